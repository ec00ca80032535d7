package domain

import (
	"fmt"
	"strings"
	"time"
)

// Date é um dia de calendário, sem componente de hora, sempre normalizado para UTC
type Date struct {
	time.Time
}

// NewDate cria uma data a partir de ano, mês e dia
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf descarta a hora e o fuso de t, mantendo o dia de calendário
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today retorna a data corrente no fuso local
func Today() Date {
	return DateOf(time.Now())
}

// AddDays retorna a data deslocada em n dias
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// DaysUntil retorna quantos dias separam d de other (negativo se other vier antes)
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time).Hours() / 24)
}

func (d Date) String() string {
	return d.Time.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*d = Date{}
		return nil
	}

	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return fmt.Errorf("data inválida %q: %w", raw, err)
	}

	*d = DateOf(t)
	return nil
}
