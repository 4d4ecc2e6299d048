package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jessevdk/go-flags"

	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
	"github.com/goodnatureofminers/ctimdex-backend/pkg/ctim"
)

type encodeCmd struct {
	LedgerIndex uint64 `long:"ledger-index" short:"l" description:"ledger index" required:"true"`
	TxnIndex    uint64 `long:"txn-index" short:"t" description:"transaction index within the ledger" required:"true"`
	NetworkID   uint64 `long:"network-id" short:"n" description:"network id" required:"true"`
}

func (c *encodeCmd) Execute(_ []string) error {
	encoded, err := ctim.Encode(c.LedgerIndex, c.TxnIndex, c.NetworkID)
	if err != nil {
		return err
	}
	fmt.Println(encoded)
	return nil
}

type decodeCmd struct {
	Args struct {
		Input string `positional-arg-name:"ctim" description:"16-char CTIM string, decimal value, or 0x-prefixed value" required:"true"`
	} `positional-args:"true" required:"true"`
}

func (c *decodeCmd) Execute(_ []string) error {
	decoded, err := ctim.Decode(parseInput(c.Args.Input))
	if err != nil {
		return err
	}

	fmt.Printf("ctim:         %s\n", decoded.String())
	fmt.Printf("value:        %d\n", decoded.Value())
	fmt.Printf("ledger_index: %d\n", decoded.LedgerIndex)
	fmt.Printf("txn_index:    %d\n", decoded.TxnIndex)
	fmt.Printf("network_id:   %d\n", decoded.NetworkID)
	fmt.Printf("network:      %s\n", model.NetworkByID(decoded.NetworkID))
	return nil
}

// parseInput picks the input variant. Numeric forms can't collide with
// the string form: a valid CTIM string is 16 hex chars starting with C,
// while its decimal value is 20 digits and the 0x form is 18 chars.
func parseInput(raw string) ctim.Input {
	if value, err := strconv.ParseUint(raw, 0, 64); err == nil && len(raw) != ctim.EncodedLen {
		return ctim.Value(value)
	}
	return ctim.Text(raw)
}

func main() {
	parser := flags.NewParser(nil, flags.Default)
	if _, err := parser.AddCommand("encode", "Encode CTIM components", "Pack a ledger index, transaction index and network id into a CTIM.", &encodeCmd{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := parser.AddCommand("decode", "Decode a CTIM", "Unpack a CTIM string or integer value into its components.", &decodeCmd{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) {
			if ferr.Type == flags.ErrHelp {
				return
			}
			// go-flags already printed the parse error.
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
