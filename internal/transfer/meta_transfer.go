package transfer

// Graph API /me/accounts response: the pages the user administers, each with
// its own page token and optionally a linked Instagram business account.
type MetaPagesResponse struct {
	Data []MetaPage `json:"data"`
}

type MetaPage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
	Instagram   *struct {
		ID string `json:"id"`
	} `json:"instagram_business_account"`
}

type InstagramDetails struct {
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profile_picture_url"`
}
