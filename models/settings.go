package models

// Keys of the local settings store.
const (
	// SettingsKeyToken holds the sealed personal access token.
	SettingsKeyToken = "ynab_user_token"
	// SettingsKeyTokenSalt holds the base64 salt used to derive the sealing key.
	SettingsKeyTokenSalt = "token_salt"
)
