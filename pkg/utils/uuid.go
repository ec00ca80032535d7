package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// batchIDLength é suficiente para identificar lotes de ingestão sem colisão prática
const batchIDLength = 12

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, batchIDLength)
}
