package service

// DealShare is the payload encoded in a deal QR code.
type DealShare struct {
	ProductName string `json:"product"`
	SellerID    string `json:"seller_id"`
	URL         string `json:"url,omitempty"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateDealQR renders a PNG QR code that points buyers at one seller's offer
	GenerateDealQR(productName, sellerID string) ([]byte, error)

	// ParseDealQR decodes the payload of a deal QR code
	ParseDealQR(qrData string) (*DealShare, error)
}
