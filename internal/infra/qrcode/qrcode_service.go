// Package qrcode renders share codes for individual deals.
package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"lowkey/config"
	"lowkey/internal/domain/entity"
	domainerrors "lowkey/internal/domain/errors"
	"lowkey/internal/domain/service"
	"lowkey/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	payloadType = "deal"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// payload is what the QR code encodes
type payload struct {
	Type string `json:"type"`
	service.DealShare
}

// NewQRCodeService creates a QR code service from the qrcode section.
// A missing section yields 256px codes at medium error correction without links.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "", "")
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateDealQR renders a PNG pointing at one seller's offer for a product
func (s *qrcodeService) GenerateDealQR(productName, sellerID string) ([]byte, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" || strings.TrimSpace(sellerID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product and seller are required")
	}

	data := payload{
		Type: payloadType,
		DealShare: service.DealShare{
			ProductName: productName,
			SellerID:    sellerID,
			URL:         s.dealURL(productName, sellerID),
		},
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseDealQR decodes the JSON payload scanned from a deal QR code
func (s *qrcodeService) ParseDealQR(qrData string) (*service.DealShare, error) {
	var data payload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("QR code payload is not JSON")
	}

	if data.Type != payloadType {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid QR code type: " + data.Type)
	}
	if data.ProductName == "" || data.SellerID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("QR code is missing product or seller")
	}

	return &data.DealShare, nil
}

// dealURL links to the ranked deals for the product, highlighting the seller.
func (s *qrcodeService) dealURL(productName, sellerID string) string {
	if s.baseURL == "" {
		return ""
	}

	query := url.Values{"seller": []string{sellerID}}

	return s.baseURL + "/api/v1/products/" + url.PathEscape(entity.ProductKey(productName)) + "/deals?" + query.Encode()
}
