package domain

type ShortURL struct {
	Key         string
	SecretKey   string
	TargetURL   string
	IsActive    bool
	Clicks      int64
	OwnerUserID int64
}

// NewShortURL builds the row installed for a freshly drawn pool key.
func NewShortURL(drawn string, ownerID int64, targetURL string) ShortURL {
	key, secret := SplitKey(drawn)
	return ShortURL{
		Key:         key,
		SecretKey:   secret,
		TargetURL:   targetURL,
		IsActive:    true,
		Clicks:      0,
		OwnerUserID: ownerID,
	}
}

type CreateURLRequest struct {
	TargetURL string `json:"target_url"`
	APIKey    string `json:"api_key"`
}

type UpdateURLRequest struct {
	IsActive *bool `json:"is_active"`
}

type URLInfo struct {
	TargetURL string `json:"target_url"`
	IsActive  bool   `json:"is_active"`
	Clicks    int64  `json:"clicks"`
	URL       string `json:"url"`
	AdminURL  string `json:"admin_url"`
}

func NewURLInfo(u *ShortURL, baseURL string) URLInfo {
	return URLInfo{
		TargetURL: u.TargetURL,
		IsActive:  u.IsActive,
		Clicks:    u.Clicks,
		URL:       baseURL + "/" + u.Key,
		AdminURL:  baseURL + "/admin/" + u.SecretKey,
	}
}
