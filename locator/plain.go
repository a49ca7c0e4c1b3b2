package locator

import (
	"net/url"

	"nft-ticketing-backend/redemption"
)

const (
	paramContractAddress = "contractAddress"
	paramTokenID         = "tokenId"
)

// Plain embeds the raw identifiers as query parameters. Anyone who knows a
// contract address and token id can build a working reference.
type Plain struct {
	base *url.URL
}

func NewPlain(baseURL string) (*Plain, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}
	return &Plain{base: base}, nil
}

func (p *Plain) IssueReference(key redemption.Key) (string, error) {
	return withQuery(p.base, url.Values{
		paramContractAddress: {key.ContractAddress},
		paramTokenID:         {key.TokenID},
	}), nil
}

func (p *Plain) ResolveReference(ref string) (redemption.Key, error) {
	contract, err := queryParam(ref, paramContractAddress)
	if err != nil {
		return redemption.Key{}, err
	}
	token, err := queryParam(ref, paramTokenID)
	if err != nil {
		return redemption.Key{}, err
	}
	return redemption.Key{ContractAddress: contract, TokenID: token}, nil
}
