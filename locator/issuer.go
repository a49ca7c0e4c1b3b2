package locator

import (
	"fmt"

	"nft-ticketing-backend/redemption"

	qrcode "github.com/skip2/go-qrcode"
)

const DefaultQRSize = 256

// Ticket is what a ticket holder is shown: the reference and its QR image.
type Ticket struct {
	Reference string `json:"reference"`
	QR        []byte `json:"-"`
}

type Issuer struct {
	codec ReferenceCodec
	size  int
}

func NewIssuer(codec ReferenceCodec, size int) *Issuer {
	if size <= 0 {
		size = DefaultQRSize
	}
	return &Issuer{codec: codec, size: size}
}

// Reference returns the locator without rendering an image.
func (i *Issuer) Reference(key redemption.Key) (string, error) {
	ref, err := i.codec.IssueReference(key)
	if err != nil {
		return "", fmt.Errorf("reference: %w", err)
	}
	return ref, nil
}

// Issue returns the locator and its PNG QR code. Encoding failures are
// reported as ErrRender, never as a partial image.
func (i *Issuer) Issue(key redemption.Key) (Ticket, error) {
	ref, err := i.Reference(key)
	if err != nil {
		return Ticket{}, fmt.Errorf("issue: %w", err)
	}
	png, err := qrcode.Encode(ref, qrcode.Medium, i.size)
	if err != nil {
		return Ticket{}, fmt.Errorf("issue: %w: %v", ErrRender, err)
	}
	return Ticket{Reference: ref, QR: png}, nil
}
