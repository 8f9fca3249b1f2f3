package api

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// DefaultURL is the Etherscan V2 multichain endpoint.
const DefaultURL = "https://api.etherscan.io/v2/api"

// Chain is the numeric chain id sent as the chainid query parameter.
type Chain uint64

// Etherscan V2 chain ids
const (
	ChainEthereum        Chain = 1
	ChainSepolia         Chain = 11155111
	ChainHolesky         Chain = 17000
	ChainHoodi           Chain = 560048
	ChainOptimism        Chain = 10
	ChainBNB             Chain = 56
	ChainBNBTestnet      Chain = 97
	ChainGnosis          Chain = 100
	ChainPolygon         Chain = 137
	ChainPolygonAmoy     Chain = 80002
	ChainFantom          Chain = 250
	ChainZkSync          Chain = 324
	ChainMantle          Chain = 5000
	ChainBase            Chain = 8453
	ChainBaseSepolia     Chain = 84532
	ChainArbitrum        Chain = 42161
	ChainArbitrumNova    Chain = 42170
	ChainArbitrumSepolia Chain = 421614
	ChainCelo            Chain = 42220
	ChainAvalanche       Chain = 43114
	ChainLinea           Chain = 59144
	ChainBlast           Chain = 81457
	ChainScroll          Chain = 534352
)

var chainNames = map[Chain]string{
	ChainEthereum:        "ethereum",
	ChainSepolia:         "sepolia",
	ChainHolesky:         "holesky",
	ChainHoodi:           "hoodi",
	ChainOptimism:        "optimism",
	ChainBNB:             "bnb",
	ChainBNBTestnet:      "bnb-testnet",
	ChainGnosis:          "gnosis",
	ChainPolygon:         "polygon",
	ChainPolygonAmoy:     "polygon-amoy",
	ChainFantom:          "fantom",
	ChainZkSync:          "zksync",
	ChainMantle:          "mantle",
	ChainBase:            "base",
	ChainBaseSepolia:     "base-sepolia",
	ChainArbitrum:        "arbitrum",
	ChainArbitrumNova:    "arbitrum-nova",
	ChainArbitrumSepolia: "arbitrum-sepolia",
	ChainCelo:            "celo",
	ChainAvalanche:       "avalanche",
	ChainLinea:           "linea",
	ChainBlast:           "blast",
	ChainScroll:          "scroll",
}

// String returns the chain's short name, or its decimal id when it has none.
func (c Chain) String() string {
	if name, ok := chainNames[c]; ok {
		return name
	}
	return strconv.FormatUint(uint64(c), 10)
}

// KnownChains lists the chains with a short name, ordered by id.
func KnownChains() []Chain {
	chains := make([]Chain, 0, len(chainNames))
	for id := range chainNames {
		chains = append(chains, id)
	}
	slices.Sort(chains)
	return chains
}

// ParseChain accepts either a known chain name ("sepolia") or a decimal chain id ("8453").
// An empty string parses to 0, meaning no chainid parameter is sent.
func ParseChain(s string) (Chain, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, nil
	}
	for id, name := range chainNames {
		if name == s {
			return id, nil
		}
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unknown chain: %s", s)
	}
	return Chain(id), nil
}

// ClientConfig is fixed at construction and never modified afterwards.
type ClientConfig struct {
	// ChainID is sent as chainid on every request; zero leaves it out.
	ChainID Chain
	// URL of the explorer API, DefaultURL when empty.
	URL string
	// APIKey is required.
	APIKey string
	// HTTPClient is used as is when set.
	HTTPClient *http.Client
}
