// Package tokens resolves the display label of a token on a chain.
package tokens

import (
	"fmt"
	"strings"
	"sync"
)

type ChainID int

const (
	ChainIDMainnet ChainID = 1
	ChainIDRinkeby ChainID = 4
	ChainIDXDAI    ChainID = 100
	ChainIDPolygon ChainID = 137
)

func (id ChainID) String() string {
	switch id {
	case ChainIDMainnet:
		return "mainnet"
	case ChainIDRinkeby:
		return "rinkeby"
	case ChainIDXDAI:
		return "xdai"
	case ChainIDPolygon:
		return "polygon"
	}

	return fmt.Sprintf("chain(%d)", int(id))
}

type Token struct {
	Address string `json:"address" yaml:"address"`
	Symbol  string `json:"symbol" yaml:"symbol"`
}

// Resolver returns the label shown for a token on the given chain.
type Resolver interface {
	Display(token Token, chainID ChainID) string
}

// NativeToken is the wrapped form of a chain's native currency, displayed with the native symbol.
type NativeToken struct {
	ChainID        ChainID `json:"chainId" yaml:"chainId"`
	WrappedAddress string  `json:"wrappedAddress" yaml:"wrappedAddress"`
	Symbol         string  `json:"symbol" yaml:"symbol"`
}

var DefaultNativeTokens = []NativeToken{
	{ChainID: ChainIDMainnet, WrappedAddress: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", Symbol: "ETH"},
	{ChainID: ChainIDRinkeby, WrappedAddress: "0xc778417E063141139Fce010982780140Aa0cD5Ab", Symbol: "ETH"},
	{ChainID: ChainIDXDAI, WrappedAddress: "0xe91D153E0b41518A2Ce8Dd3D7944Fa863463a97d", Symbol: "XDAI"},
	{ChainID: ChainIDPolygon, WrappedAddress: "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270", Symbol: "MATIC"},
}

type Registry struct {
	mu     sync.RWMutex
	native map[ChainID]NativeToken
}

var _ Resolver = &Registry{}

func NewRegistry(nativeTokens ...NativeToken) *Registry {
	r := &Registry{native: make(map[ChainID]NativeToken)}
	r.Add(DefaultNativeTokens...)
	r.Add(nativeTokens...)
	return r
}

// Add registers native tokens, an entry replaces the previous one of the same chain.
func (r *Registry) Add(nativeTokens ...NativeToken) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range nativeTokens {
		r.native[t.ChainID] = t
	}
}

func (r *Registry) Display(token Token, chainID ChainID) string {
	r.mu.RLock()
	native, ok := r.native[chainID]
	r.mu.RUnlock()

	if ok && native.WrappedAddress != "" && strings.EqualFold(native.WrappedAddress, token.Address) {
		return native.Symbol
	}

	return token.Symbol
}
