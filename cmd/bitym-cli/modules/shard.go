package cmd

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bitym/core/pkg/shardstore"
	"github.com/bitym/core/pkg/storage"
	"github.com/bitym/core/pkg/util"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/crypto/ripemd160"
)

var (
	payloadPath string

	contractFlags  []string
	treeFlags      []string
	challengeFlags []string
	metaFlags      []string
)

// shardCmd represents the shard command.
var shardCmd = &cobra.Command{
	Use:   "shard",
	Short: "Operations with shard records of the data directory",
}

var storeShardCmd = &cobra.Command{
	Use:   "store <key>",
	Short: "Store a shard record",
	Long: `Store a shard record under the given key. Category documents are
passed as repeatable "peer=JSON" flags and merge additively with the
documents already on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := shardstore.Record{Hash: args[0]}

		if payloadPath != "" {
			data, err := os.ReadFile(payloadPath)
			if err != nil {
				return fmt.Errorf("read payload file: %w", err)
			}

			rec.Shard = data
		}

		var err error
		for _, c := range []struct {
			flags []string
			dst   *map[string]any
		}{
			{contractFlags, &rec.Contracts},
			{treeFlags, &rec.Trees},
			{challengeFlags, &rec.Challenges},
			{metaFlags, &rec.Meta},
		} {
			if *c.dst, err = parseDocs(c.flags); err != nil {
				return err
			}
		}

		a, err := openAdapter(false)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		if err := a.Store(&rec); err != nil {
			return fmt.Errorf("store record: %w", err)
		}

		cmd.Println("stored", rec.Hash)

		return nil
	},
}

var fetchShardCmd = &cobra.Command{
	Use:   "fetch <key>",
	Short: "Fetch a shard record and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openAdapter(true)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		rec, err := a.Fetch(args[0])
		if err != nil {
			if errors.Is(err, shardstore.ErrRecordNotFound) {
				return fmt.Errorf("record %q not found", args[0])
			}

			return fmt.Errorf("fetch record: %w", err)
		}

		view := struct {
			Hash       string         `json:"hash"`
			ShardSize  int            `json:"shardSize"`
			Shard      string         `json:"shard,omitempty"`
			Contracts  map[string]any `json:"contracts"`
			Trees      map[string]any `json:"trees"`
			Challenges map[string]any `json:"challenges"`
			Meta       map[string]any `json:"meta"`
		}{
			Hash:       rec.Hash,
			ShardSize:  len(rec.Shard),
			Shard:      base64.StdEncoding.EncodeToString(rec.Shard),
			Contracts:  rec.Contracts,
			Trees:      rec.Trees,
			Challenges: rec.Challenges,
			Meta:       rec.Meta,
		}

		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return err
		}

		cmd.Println(string(data))

		return nil
	},
}

var listShardCmd = &cobra.Command{
	Use:   "list",
	Short: "List keys of all stored shard records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := openStore(true)
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		return s.Iterate(func(key string) error {
			cmd.Println(key)
			return nil
		})
	},
}

var importShardCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Bulk-store every file of a directory as a payload-only record",
	Long: `Read every regular file of the directory and store it as a
payload-only shard record keyed by the RIPEMD-160 over SHA-256 digest
of its contents. Files are imported concurrently by a worker pool of
"import.workers" size.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := os.ReadDir(args[0])
		if err != nil {
			return fmt.Errorf("read import directory: %w", err)
		}

		a, err := openAdapter(false)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		pool, err := util.NewWorkerPool(cast.ToInt(viper.Get("import.workers")))
		if err != nil {
			return fmt.Errorf("create worker pool: %w", err)
		}
		defer pool.Release()

		var (
			wg sync.WaitGroup

			mtx      sync.Mutex
			firstErr error
		)

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			path := filepath.Join(args[0], entry.Name())

			wg.Add(1)

			err := pool.Submit(func() {
				defer wg.Done()

				if err := importFile(cmd, a, path); err != nil {
					mtx.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mtx.Unlock()
				}
			})
			if err != nil {
				wg.Done()
				return fmt.Errorf("submit import task: %w", err)
			}
		}

		wg.Wait()

		return firstErr
	},
}

func importFile(cmd *cobra.Command, a storage.Adapter, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}

	key := recordKey(data)

	if err := a.Store(&shardstore.Record{Hash: key, Shard: data}); err != nil {
		return fmt.Errorf("store %q: %w", path, err)
	}

	cmd.Println(key, filepath.Base(path))

	return nil
}

// recordKey derives the record key of a payload: the hex-encoded
// RIPEMD-160 digest of its SHA-256 digest, as produced by the contract
// negotiation layer.
func recordKey(data []byte) string {
	sum := sha256.Sum256(data)

	h := ripemd160.New()
	h.Write(sum[:])

	return hex.EncodeToString(h.Sum(nil))
}

// parseDocs turns repeated "peer=JSON" flag values into a category
// document collection.
func parseDocs(flags []string) (map[string]any, error) {
	if len(flags) == 0 {
		return nil, nil
	}

	docs := make(map[string]any, len(flags))

	for _, f := range flags {
		peer, raw, found := strings.Cut(f, "=")
		if !found || peer == "" {
			return nil, fmt.Errorf("invalid document %q: want peer=JSON", f)
		}

		var doc any
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON document for peer %q: %w", peer, err)
		}

		docs[peer] = doc
	}

	return docs, nil
}

func init() {
	rootCmd.AddCommand(shardCmd)
	shardCmd.AddCommand(storeShardCmd, fetchShardCmd, listShardCmd, importShardCmd)

	storeShardCmd.Flags().StringVar(&payloadPath, "payload", "", "file with the binary shard payload")
	storeShardCmd.Flags().StringArrayVar(&contractFlags, "contract", nil, "contract document as peer=JSON")
	storeShardCmd.Flags().StringArrayVar(&treeFlags, "tree", nil, "audit tree document as peer=JSON")
	storeShardCmd.Flags().StringArrayVar(&challengeFlags, "challenge", nil, "challenge document as peer=JSON")
	storeShardCmd.Flags().StringArrayVar(&metaFlags, "meta", nil, "metadata document as peer=JSON")
}
