package ethereum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const (
	sendEtherMethod = "sendEther"
	ownerMethod     = "owner"
	etherSentEvent  = "EtherSent"
)

// WalletABI is the interface of the Wallet contract. It is used when an
// artifact carries deployments only.
const WalletABI = `[
	{"inputs":[],"stateMutability":"nonpayable","type":"constructor"},
	{"anonymous":false,"inputs":[
		{"indexed":true,"internalType":"address","name":"from","type":"address"},
		{"indexed":true,"internalType":"address","name":"to","type":"address"},
		{"indexed":false,"internalType":"uint256","name":"value","type":"uint256"}
	],"name":"EtherSent","type":"event"},
	{"inputs":[],"name":"owner","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"address payable","name":"_to","type":"address"}],"name":"sendEther","outputs":[],"stateMutability":"payable","type":"function"}
]`

var ErrIncompatibleABI = errors.New("artifact abi does not describe a wallet contract")

// Artifact is a compiled contract description with its per-network
// deployments, in the layout truffle writes to build/contracts.
type Artifact struct {
	ContractName string
	ABI          abi.ABI
	Networks     map[string]Deployment
}

func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	return ParseArtifact(data)
}

func ParseArtifact(data []byte) (*Artifact, error) {
	var raw struct {
		ContractName string                `json:"contractName"`
		ABI          json.RawMessage       `json:"abi"`
		Networks     map[string]Deployment `json:"networks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}

	abiJSON := []byte(WalletABI)
	if len(bytes.TrimSpace(raw.ABI)) > 0 && string(raw.ABI) != "null" {
		abiJSON = raw.ABI
	}

	parsed, err := abi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("parse abi: %w", err)
	}

	if err := checkWalletABI(parsed); err != nil {
		return nil, err
	}

	networks := raw.Networks
	if networks == nil {
		networks = map[string]Deployment{}
	}

	return &Artifact{
		ContractName: raw.ContractName,
		ABI:          parsed,
		Networks:     networks,
	}, nil
}

// Lookup returns the deployment for a network id as reported by net_version.
func (a *Artifact) Lookup(networkID string) (Deployment, bool) {
	d, ok := a.Networks[strings.TrimSpace(networkID)]
	if !ok || d.Address == (common.Address{}) {
		return Deployment{}, false
	}
	return d, true
}

func checkWalletABI(parsed abi.ABI) error {
	for _, name := range []string{sendEtherMethod, ownerMethod} {
		if _, ok := parsed.Methods[name]; !ok {
			return fmt.Errorf("%w: missing method %q", ErrIncompatibleABI, name)
		}
	}
	if _, ok := parsed.Events[etherSentEvent]; !ok {
		return fmt.Errorf("%w: missing event %q", ErrIncompatibleABI, etherSentEvent)
	}
	return nil
}
