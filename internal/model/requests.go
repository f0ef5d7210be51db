package model

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordResetConfirm struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ProfileUpdate is a partial update: nil fields are left untouched.
type ProfileUpdate struct {
	DisplayName *string `json:"username,omitempty"`
	FullName    *string `json:"fullName,omitempty"`
	Phone       *string `json:"phoneNumber,omitempty"`
	AvatarURL   *string `json:"photoURL,omitempty"`
}

type RoleUpdate struct {
	Role string `json:"role"`
}

type TransactionRequest struct {
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type JerseyOrderRequest struct {
	Size             string `json:"size"`
	NameOnJersey     string `json:"nameOnJersey"`
	Number           string `json:"number"`
	DeliveryLocation string `json:"deliveryLocation"`
	ContactInfo      string `json:"contactInfo"`
}

type ConfirmOrderRequest struct {
	Charged int64 `json:"charged"`
	Balance int64 `json:"balance"`
}

type ManualReceiptRequest struct {
	PayerName     string `json:"payerName"`
	PayerEmail    string `json:"payerEmail"`
	PayerPhone    string `json:"payerPhone"`
	PayerRole     string `json:"payerRole"`
	Amount        int64  `json:"amount"`
	Description   string `json:"description"`
	ModeOfPayment string `json:"modeOfPayment"`
}

type AnnouncementRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsImportant bool   `json:"isImportant"`
	MediaURL    string `json:"mediaUrl"`
	Duration    string `json:"duration"`
}

type SocialStatsRequest struct {
	Followers      int64   `json:"followers"`
	EngagementRate float64 `json:"engagementRate"`
}
