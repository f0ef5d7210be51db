package model

import (
	"fmt"
	"time"

	"github.com/and161185/clubhouse/internal/errs"
)

type Role string

const (
	RoleAdmin   Role = "L1_ADMIN"
	RoleFinance Role = "L2_ADMIN"
	RoleContent Role = "L3_ADMIN"
	RoleMember  Role = "L4_ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFinance, RoleContent, RoleMember:
		return true
	}
	return false
}

// ParseRole never falls back to a default: unknown values are an error.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidRole, s)
	}
	return r, nil
}

type Identity struct {
	ID          string    `json:"id" firestore:"id"`
	Email       string    `json:"email" firestore:"email"`
	DisplayName string    `json:"username" firestore:"username"`
	Role        Role      `json:"role" firestore:"role"`
	FullName    string    `json:"fullName,omitempty" firestore:"fullName,omitempty"`
	Phone       string    `json:"phoneNumber,omitempty" firestore:"phoneNumber,omitempty"`
	AvatarURL   string    `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

type Direction string

const (
	Inflow  Direction = "INFLOW"
	Outflow Direction = "OUTFLOW"
)

var Categories = []string{
	"Jerseys",
	"Sponsorship",
	"Match Fees",
	"Equipment",
	"Transport",
	"Refreshments",
	"Other",
}

func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Transaction amounts are in the base currency and never change after creation.
type Transaction struct {
	ID          string    `json:"id" firestore:"-"`
	Amount      int64     `json:"amount" firestore:"amount"`
	Date        time.Time `json:"date" firestore:"date"`
	Category    string    `json:"category" firestore:"category"`
	Description string    `json:"description" firestore:"description"`
	Type        Direction `json:"type" firestore:"type"`
	CreatedBy   string    `json:"createdBy" firestore:"createdBy"`
}

type OrderStatus string

const (
	Pending   OrderStatus = "PENDING"
	Confirmed OrderStatus = "CONFIRMED"
)

type JerseyOrder struct {
	ID               string      `json:"id" firestore:"-"`
	Size             string      `json:"size" firestore:"size"`
	NameOnJersey     string      `json:"nameOnJersey" firestore:"nameOnJersey"`
	Number           string      `json:"number" firestore:"number"`
	DeliveryLocation string      `json:"deliveryLocation" firestore:"deliveryLocation"`
	ContactInfo      string      `json:"contactInfo" firestore:"contactInfo"`
	Status           OrderStatus `json:"status" firestore:"status"`
	ReceiptNumber    string      `json:"receiptNumber,omitempty" firestore:"receiptNumber,omitempty"`
	OrderedBy        string      `json:"orderedBy" firestore:"orderedBy"`
	OrderDate        time.Time   `json:"orderDate" firestore:"orderDate"`
	AmountCharged    *int64      `json:"amountCharged,omitempty" firestore:"amountCharged"`
	BalanceDue       *int64      `json:"balanceDue,omitempty" firestore:"balanceDue"`
}

type ReceiptType string

const (
	ManualReceipt ReceiptType = "MANUAL"
	JerseyReceipt ReceiptType = "JERSEY"
)

var PaymentModes = []string{"Cash", "Mobile Money", "Bank Transfer", "Cheque"}

func IsValidPaymentMode(m string) bool {
	for _, v := range PaymentModes {
		if v == m {
			return true
		}
	}
	return false
}

type Party struct {
	Name  string `json:"name" firestore:"name"`
	Email string `json:"email" firestore:"email"`
	Phone string `json:"phone" firestore:"phone"`
	Role  string `json:"role" firestore:"role"`
}

type Receipt struct {
	ID            string      `json:"id" firestore:"-"`
	Number        string      `json:"number" firestore:"number"`
	Date          time.Time   `json:"date" firestore:"date"`
	Amount        int64       `json:"amount" firestore:"amount"`
	Description   string      `json:"description" firestore:"description"`
	Payer         Party       `json:"payer" firestore:"payer"`
	Receiver      Party       `json:"receiver" firestore:"receiver"`
	ModeOfPayment string      `json:"modeOfPayment" firestore:"modeOfPayment"`
	Type          ReceiptType `json:"type" firestore:"type"`
	GeneratedBy   string      `json:"generatedBy" firestore:"generatedBy"`
}

type SeasonStats struct {
	SeasonName string `json:"seasonName" firestore:"seasonName"`
	StartDate  string `json:"startDate" firestore:"startDate"`
	Played     int    `json:"played" firestore:"played"`
	Total      int    `json:"total" firestore:"total"`
}

func PlaceholderSeason() SeasonStats {
	return SeasonStats{SeasonName: "N/A"}
}

var Platforms = []string{"WhatsApp", "Instagram", "X", "TikTok"}

func IsValidPlatform(p string) bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

type SocialStats struct {
	Platform       string    `json:"platform" firestore:"platform"`
	Followers      int64     `json:"followers" firestore:"followers"`
	EngagementRate float64   `json:"engagementRate" firestore:"engagementRate"`
	LastUpdated    time.Time `json:"lastUpdated" firestore:"lastUpdated"`
}

type Announcement struct {
	ID          string    `json:"id" firestore:"-"`
	Title       string    `json:"title" firestore:"title"`
	Content     string    `json:"content" firestore:"content"`
	Date        time.Time `json:"date" firestore:"date"`
	Author      string    `json:"author" firestore:"author"`
	IsImportant bool      `json:"isImportant" firestore:"isImportant"`
	MediaURL    string    `json:"mediaUrl,omitempty" firestore:"mediaUrl,omitempty"`
	Duration    string    `json:"duration,omitempty" firestore:"duration,omitempty"`
}

type NotificationFailure struct {
	ID            string    `json:"id" firestore:"-"`
	ReceiptID     string    `json:"receiptId" firestore:"receiptId"`
	ReceiptNumber string    `json:"receiptNumber" firestore:"receiptNumber"`
	Recipient     string    `json:"recipient" firestore:"recipient"`
	Reason        string    `json:"reason" firestore:"reason"`
	OccurredAt    time.Time `json:"occurredAt" firestore:"occurredAt"`
}

type FinanceSummary struct {
	Currency string `json:"currency"`
	Season   string `json:"season"`
	Inflow   int64  `json:"inflow"`
	Outflow  int64  `json:"outflow"`
	Net      int64  `json:"net"`

	InflowDisplay  string `json:"inflowDisplay"`
	OutflowDisplay string `json:"outflowDisplay"`
	NetDisplay     string `json:"netDisplay"`
}
