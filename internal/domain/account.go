package domain

// Account holds the details of the authenticated WakaTime user.
type Account struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	DisplayName string `json:"display_name"`
	Timezone    string `json:"timezone"`
	CreatedAt   string `json:"created_at"`
}

// Name returns the most descriptive name available for the account.
func (a Account) Name() string {
	for _, v := range []string{a.FullName, a.DisplayName, a.Username} {
		if v != "" {
			return v
		}
	}
	return a.Email
}
