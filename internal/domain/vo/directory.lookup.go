package vo

type DirectoryUser struct {
	Username    string   `json:"username"`
	DN          string   `json:"dn"`
	DisplayName string   `json:"display_name"`
	Email       string   `json:"email"`
	Groups      []string `json:"groups,omitempty"`
}
