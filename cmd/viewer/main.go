package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

// Local copies of the stored records keep the viewer independent from
// the repositories package.
type messageRow struct {
	ID       string `json:"id"`
	ChatID   string `json:"chat_id"`
	Seq      uint64 `json:"seq"`
	SenderID string `json:"sender_id"`
	Content  struct {
		Text string `json:"text,omitempty"`
	} `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type statusRow struct {
	MessageID   string    `json:"message_id"`
	RecipientID string    `json:"recipient_id"`
	State       int       `json:"state"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func main() {
	_ = godotenv.Load()
	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB")
	prefix := flag.String("prefix", "msg:", "Prefix to scan (msg:, status:, chat:, typing:)")
	flag.Parse()

	// Open Badger in Read-Only mode.
	// Note: BypassLockGuard allows opening if another process (the server) holds the lock.
	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			// Skip secondary indexes
			if strings.HasPrefix(key, "idx:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				table.Append([]string{key, describe(key, v)})
				return nil
			})
			if err != nil {
				fmt.Printf("Error reading key %s: %v\n", key, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}

	table.Render()
}

func describe(key string, val []byte) string {
	switch {
	case strings.HasPrefix(key, "msg:"):
		var row messageRow
		if err := json.Unmarshal(val, &row); err != nil {
			return "unmarshal failed"
		}
		return fmt.Sprintf("#%d %s: %s", row.Seq, row.SenderID, row.Content.Text)
	case strings.HasPrefix(key, "status:"):
		var row statusRow
		if err := json.Unmarshal(val, &row); err != nil {
			return "unmarshal failed"
		}
		return fmt.Sprintf("%s %s at %s", row.RecipientID, colorState(row.State),
			row.UpdatedAt.Format(time.RFC822))
	default:
		return string(val)
	}
}

func colorState(state int) string {
	switch state {
	case 0:
		return color.Gray.Render("sent")
	case 1:
		return color.Yellow.Render("delivered")
	case 2:
		return color.Green.Render("seen")
	default:
		return fmt.Sprintf("state(%d)", state)
	}
}
