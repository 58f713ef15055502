package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cred-keeper/models"
)

const (
	hashColWidth  = 19
	partyColWidth = 15
	dateLayout    = "2006-01-02"
)

// renderCredentials draws a credential list. party picks the wallet shown in
// the second column: the issuer for holders, the holder for issuers.
func renderCredentials(items []models.Credential, idx int, partyTitle string, party func(models.Credential) string) string {
	if len(items) == 0 {
		return "No credentials yet."
	}

	idWidth := max(len("ID"), len(fmt.Sprintf("%d", len(items)))) + 2

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ %-*s │ %-*s │ %-10s │ %s\n",
		idWidth, "ID", hashColWidth, "Credential ID", partyColWidth, partyTitle, "Issued", "Status"))
	b.WriteString(strings.Repeat("─", idWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", hashColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", partyColWidth))
	b.WriteString("─┼────────────┼─────────\n")

	for i, c := range items {
		b.WriteString(padRight(fmt.Sprintf("%s %d", cursor(i == idx), i+1), idWidth))
		b.WriteString(" │ ")
		b.WriteString(padRight(fitText(c.Hash, hashColWidth), hashColWidth))
		b.WriteString(" │ ")
		b.WriteString(padRight(fitText(party(c), partyColWidth), partyColWidth))
		b.WriteString(" │ ")
		b.WriteString(padRight(issuedOn(c), 10))
		b.WriteString(" │ ")
		b.WriteString(credentialStatus(c))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func issuedOn(c models.Credential) string {
	if c.IssuedAt.IsZero() {
		return "-"
	}
	return c.IssuedAt.Format(dateLayout)
}

func credentialStatus(c models.Credential) string {
	if c.Revoked {
		return errorStyle.Render("Revoked")
	}
	return successStyle.Render("Active")
}

func moveCursor(idx, delta, n int) int {
	if n == 0 {
		return 0
	}
	return min(max(idx+delta, 0), n-1)
}
