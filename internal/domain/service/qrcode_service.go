package service

// QRCodeService renders a URL as a QR code image, used to hand a checkout
// URL from a desktop session to a constrained client.
type QRCodeService interface {
	// GeneratePNG renders the content as a PNG image.
	GeneratePNG(content string) ([]byte, error)

	// GenerateBase64 renders the content as a base64-encoded PNG for inline embedding.
	GenerateBase64(content string) (string, error)
}
