package cli

import (
	"testing"

	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/gt"
)

func hasIndex(c fireconf.Collection, fields ...fireconf.IndexField) bool {
	for _, idx := range c.Indexes {
		if len(idx.Fields) != len(fields) {
			continue
		}
		match := true
		for i, f := range fields {
			if idx.Fields[i].Path != f.Path || idx.Fields[i].Order != f.Order {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func TestIndexConfigCoversActionQueries(t *testing.T) {
	cfg := getIndexConfig("")
	gt.A(t, cfg.Collections).Length(1)

	actions := cfg.Collections[0]
	gt.Equal(t, actions.Name, "actions")

	// ListByMatch filters MatchID and orders by ID ascending.
	gt.B(t, hasIndex(actions,
		fireconf.IndexField{Path: "MatchID", Order: fireconf.OrderAscending},
		fireconf.IndexField{Path: "ID", Order: fireconf.OrderAscending},
	)).True()

	// GetLastByMatch filters MatchID and orders by ID descending.
	gt.B(t, hasIndex(actions,
		fireconf.IndexField{Path: "MatchID", Order: fireconf.OrderAscending},
		fireconf.IndexField{Path: "ID", Order: fireconf.OrderDescending},
	)).True()
}

func TestIndexConfigAppliesCollectionPrefix(t *testing.T) {
	cfg := getIndexConfig("test_123")
	gt.Equal(t, cfg.Collections[0].Name, "test_123_actions")
}
