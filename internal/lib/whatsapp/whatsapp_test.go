package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {
	tests := []struct {
		name      string
		contact   string
		wantPhone string
	}{
		{name: "номер с плюсом и пробелами", contact: "+54 911 5555 1234", wantPhone: "5491155551234"},
		{name: "номер без плюса", contact: "5491155551234", wantPhone: "5491155551234"},
		{name: "пустой номер", contact: "", wantPhone: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := Link(tt.contact, "alice", "05-jun")

			assert.True(t, strings.HasPrefix(link, "https://wa.me/"+tt.wantPhone+"?text="), link)

			parsed, err := url.Parse(link)
			require.NoError(t, err)
			text := parsed.Query().Get("text")
			assert.Contains(t, text, "alice")
			assert.Contains(t, text, "05-jun")
		})
	}
}
