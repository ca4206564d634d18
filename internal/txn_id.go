package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// txnPrefix marks relay-generated transaction identifiers on the gateway side.
const txnPrefix = "TXN_"

// NewTxnId generates a fresh transaction identifier: prefix, millisecond
// epoch timestamp, and a short random suffix. The timestamp keeps
// identifiers ordered in gateway logs; the suffix closes the collision
// window between concurrent calls within the same millisecond. Identifiers
// are never reused: a retried checkout gets a new one.
func NewTxnId() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s%d_%s", txnPrefix, time.Now().UnixMilli(), suffix)
}
