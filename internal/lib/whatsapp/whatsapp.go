// Package whatsapp строит deep-ссылки wa.me для напоминаний клиентам.
// Пакет только формирует строку, никаких сетевых вызовов не делает.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// Link строит ссылку wa.me на чат с клиентом с подставленным текстом
// напоминания о продлении. Из номера удаляются пробелы и ведущий "+".
func Link(contactNumber, username, expirationToken string) string {
	phone := strings.ReplaceAll(contactNumber, " ", "")
	phone = strings.TrimPrefix(phone, "+")

	message := fmt.Sprintf(
		"Hola %s! Te recordamos que tu servicio IPTV vence el %s. Escribinos para renovarlo.",
		username, expirationToken)

	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}
