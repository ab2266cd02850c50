package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tokenized/config"

	"github.com/lambda-chain/txcore/bitcoin"
	"github.com/lambda-chain/txcore/logger"
	"github.com/lambda-chain/txcore/threads"
	"github.com/lambda-chain/txcore/wire"
)

// Config controls how many block files are decoded concurrently.
type Config struct {
	Concurrency int `default:"4" envconfig:"CONCURRENCY" json:"concurrency"`
}

// decodedInput is the JSON shape printed for one transaction input.
type decodedInput struct {
	PrevHash     string `json:"prev_hash"`
	PrevIndex    uint32 `json:"prev_index"`
	Sequence     uint32 `json:"sequence"`
	IsGeneration bool   `json:"is_generation"`
}

// decodedOutput is the JSON shape printed for one transaction output.
type decodedOutput struct {
	Value        int64       `json:"value"`
	Script       bitcoin.Hex `json:"script"`
	ScriptType   string      `json:"script_type"`
	ContractType string      `json:"contract_type,omitempty"`
	RefCount     int         `json:"push_input_ref_count"`
}

// decodedTx is the JSON shape printed for one transaction.
type decodedTx struct {
	TxID    string          `json:"txid"`
	Version int32           `json:"version"`
	Inputs  []decodedInput  `json:"inputs"`
	Outputs []decodedOutput `json:"outputs"`
}

func main() {
	ctx := logger.ContextWithLogConfig(context.Background(), logger.NewDevelopmentConfig())

	cfg := &Config{}
	if err := config.LoadConfig(ctx, cfg); err != nil {
		logger.Fatal(ctx, "Failed to load config : %s", err)
	}

	if len(os.Args) < 2 {
		logger.Fatal(ctx, "Not enough arguments. Need one or more block files")
	}

	batchID := uuid.New().String()
	ctx = logger.ContextWithLogTrace(ctx, batchID)
	logger.Info(ctx, "Starting batch with %d files, concurrency %d", len(os.Args[1:]), cfg.Concurrency)

	paths := os.Args[1:]
	batch := threads.NewThread("batch", func(ctx context.Context, interrupt <-chan interface{}) error {
		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			select {
			case <-interrupt:
				cancel()
			case <-runCtx.Done():
			}
		}()

		pool := threads.NewThreadPool(cfg.Concurrency)
		for _, path := range paths {
			path := path
			pool.Add(func(ctx context.Context) error {
				return decodeFile(ctx, path)
			})
		}

		return pool.Run(runCtx)
	})

	complete := batch.GetCompleteChannel()
	batch.Start(ctx)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	select {
	case <-signals:
		logger.Info(ctx, "Received interrupt, stopping batch")
		batch.Stop(ctx)
		<-complete
	case <-complete:
	}

	if err := batch.Error(); err != nil {
		logger.Fatal(ctx, "Batch failed : %s", err)
	}
}

// decodeFile reads one file of hex-encoded raw blocks (one block per line)
// and prints a JSON object per transaction to stdout. A block that fails to
// decode is logged and skipped, and decoding continues with the next line;
// such failures do not abort the batch.
func decodeFile(ctx context.Context, path string) error {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	lineCount := 0
	txCount := 0
	for _, line := range splitLines(raw) {
		if len(line) == 0 {
			continue
		}
		lineCount++

		block, err := hex.DecodeString(string(line))
		if err != nil {
			logger.Warn(ctx, "%s: line %d: invalid hex : %s", path, lineCount, err)
			continue
		}

		d := wire.NewDeserializer(block)
		txs, ids, err := d.ReadBlock()
		if err != nil {
			logger.Warn(ctx, "%s: line %d: truncated block : %s", path, lineCount, err)
			continue
		}

		for i, tx := range txs {
			out := decodeTx(tx, ids[i])
			b, err := json.Marshal(out)
			if err != nil {
				logger.Error(ctx, "%s: line %d: tx %d: marshal failed : %s", path, lineCount, i, err)
				continue
			}
			fmt.Println(string(b))
			txCount++
		}
	}

	logger.Info(ctx, "%s: decoded %d transactions from %d blocks", path, txCount, lineCount)
	return nil
}

func decodeTx(tx wire.Tx, id []byte) decodedTx {
	out := decodedTx{
		TxID:    hex.EncodeToString(id),
		Version: tx.Version,
	}

	for _, in := range tx.Inputs {
		out.Inputs = append(out.Inputs, decodedInput{
			PrevHash:     in.PrevHash.String(),
			PrevIndex:    in.PrevIndex,
			Sequence:     in.Sequence,
			IsGeneration: in.IsGeneration(),
		})
	}

	for _, o := range tx.Outputs {
		refs, err := bitcoin.GetPushInputRefs(o.Script)
		refCount := 0
		if err == nil {
			refCount = len(refs.All)
		}

		decoded := decodedOutput{
			Value:      o.Value,
			Script:     bitcoin.Hex(o.Script),
			ScriptType: bitcoin.ClassifyOutputScript(o.Script),
			RefCount:   refCount,
		}
		if o.Contract != nil {
			decoded.ContractType = o.Contract.TypeName()
		}
		out.Outputs = append(out.Outputs, decoded)
	}

	return out
}

func splitLines(b []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, c := range b {
		if c == '\n' {
			lines = append(lines, trimCR(b[start:i]))
			start = i + 1
		}
	}
	if start < len(b) {
		lines = append(lines, trimCR(b[start:]))
	}
	return lines
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}
