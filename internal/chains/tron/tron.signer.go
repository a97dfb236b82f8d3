package tron

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fbsobreira/gotron-sdk/pkg/proto/core"
	"google.golang.org/protobuf/proto"
)

// transactionID is sha256 over the serialized raw data, hex encoded.
func transactionID(tx *core.Transaction) (string, []byte, error) {
	raw, err := proto.Marshal(tx.GetRawData())
	if err != nil {
		return "", nil, fmt.Errorf("tron: marshal raw data: %w", err)
	}

	digest := sha256.Sum256(raw)
	return hex.EncodeToString(digest[:]), digest[:], nil
}

func signTransaction(tx *core.Transaction, key *ecdsa.PrivateKey) (string, error) {
	txID, digest, err := transactionID(tx)
	if err != nil {
		return "", err
	}

	signature, err := crypto.Sign(digest, key)
	if err != nil {
		return "", fmt.Errorf("tron: sign transaction: %w", err)
	}

	tx.Signature = [][]byte{signature}
	return txID, nil
}
