package chain

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"

	"github.com/lockdapp/lockdex-backend/internal/decoder"
	"github.com/lockdapp/lockdex-backend/internal/model"
	"github.com/lockdapp/lockdex-backend/pkg/safe"
)

// RawFromWire reduces a wire transaction to the decoder input: txid,
// the output scripts in order, and the serialized transaction as hex
// for whole-body scans.
func RawFromWire(tx *wire.MsgTx, height uint64, blockHash string, timestamp time.Time) (model.RawTransaction, error) {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return model.RawTransaction{}, fmt.Errorf("serialize tx: %w", err)
	}
	outputs := make([][]byte, 0, len(tx.TxOut))
	for _, out := range tx.TxOut {
		outputs = append(outputs, out.PkScript)
	}
	return model.RawTransaction{
		TxID:        tx.TxHash().String(),
		BlockHeight: height,
		BlockHash:   blockHash,
		Timestamp:   timestamp,
		Outputs:     outputs,
		Body:        hex.EncodeToString(buf.Bytes()),
	}, nil
}

// HasDataCarrier reports whether any output can carry application data.
func HasDataCarrier(tx *wire.MsgTx) bool {
	for _, out := range tx.TxOut {
		if decoder.IsDataCarrier(out.PkScript) {
			return true
		}
	}
	return false
}

// CarriesTag reports whether any data-carrier output mentions tag.
func CarriesTag(tx *wire.MsgTx, tag string) bool {
	needle := []byte(tag)
	for _, out := range tx.TxOut {
		if !decoder.IsDataCarrier(out.PkScript) {
			continue
		}
		if bytes.Contains(out.PkScript, needle) {
			return true
		}
	}
	return false
}

// ParseAmount converts a BSV-denominated value to satoshis.
func ParseAmount(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}

// FormatAmount renders satoshis as a BSV-denominated string.
func FormatAmount(sats uint64) string {
	return strconv.FormatFloat(btcutil.Amount(sats).ToBTC(), 'f', -1, 64) + " BSV"
}
