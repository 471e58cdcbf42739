package model

// BankDetails holds the payout account a user registered with the dashboard.
// The platform API never sees these; they live in the dashboard's own store.
type BankDetails struct {
	AccountHolder string `json:"accountHolder" bson:"account_holder"`
	BankName      string `json:"bankName" bson:"bank_name"`
	AccountNumber string `json:"accountNumber" bson:"account_number"`
	IBAN          string `json:"iban" bson:"iban"`
	SwiftCode     string `json:"swiftCode" bson:"swift_code"`
	RoutingNumber string `json:"routingNumber" bson:"routing_number"`
}

// IsEmpty reports whether no field has been filled in yet.
func (b BankDetails) IsEmpty() bool {
	return b == BankDetails{}
}
