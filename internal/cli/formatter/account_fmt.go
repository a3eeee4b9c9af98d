package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wakatime/internal/domain"
)

// FormatAccount renders the account details box. Empty optional fields are
// omitted.
func FormatAccount(acct *domain.Account) string {
	var b strings.Builder

	field := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s %s\n", StylePurple.Render(fmt.Sprintf("%-16s", label+":")), StyleFg.Render(value))
	}

	field("Account Created", acct.CreatedAt)
	field("Email", acct.Email)
	field("Full Name", acct.FullName)
	field("Username", acct.Username)
	field("Timezone", acct.Timezone)

	content := strings.TrimRight(b.String(), "\n")
	if content == "" {
		content = Dim("No account details available.")
	}
	return RenderBox("WakaTime Account Details", content) + "\n"
}
