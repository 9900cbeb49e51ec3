package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateOrderNumber gera o número curto exibido ao cliente no checkout.
func GenerateOrderNumber() (string, error) {
	return gonanoid.Generate(characters, 10)
}
