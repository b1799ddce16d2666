package source

import (
	"encoding/json"
	"fmt"

	"tm-migrator/internal/sentinel"
	"tm-migrator/internal/storage"
)

// snapshotVersion is bumped when the snapshot layout changes.
const snapshotVersion = 1

// SnapshotFile is the conventional snapshot name.
const SnapshotFile = "extraction.snapshot.json"

type snapshot struct {
	Version int      `json:"version"`
	Extract *extract `json:"extract"`
}

// Save writes the parsed extract and its DeveloperNames to path. A Context
// loaded from it answers every accessor the same way.
func (c *Context) Save(sink storage.Sink, path string) error {
	if err := c.life.Guard(); err != nil {
		return err
	}

	data, err := json.Marshal(snapshot{Version: snapshotVersion, Extract: c.data})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := sink.WriteFile(path, data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	c.logger.Info("source snapshot saved", "path", path)

	return nil
}

func (c *Context) load(opts Options) error {
	if opts.SnapshotPath == "" {
		return fmt.Errorf("snapshot path is empty: %w", sentinel.ErrType)
	}

	data, err := c.src.ReadFile(opts.SnapshotPath)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return &sentinel.ParseError{File: opts.SnapshotPath, Err: err}
	}

	if snap.Version != snapshotVersion || snap.Extract == nil {
		return &sentinel.ParseError{File: opts.SnapshotPath, Err: fmt.Errorf("unsupported snapshot version %d", snap.Version)}
	}

	e := snap.Extract

	for _, t := range e.Territories {
		if _, ok := e.TerritoryNames[t.Id]; !ok {
			return &sentinel.ParseError{File: opts.SnapshotPath, Err: fmt.Errorf("territory %s has no developer name", t.Id)}
		}
	}

	for _, r := range e.Rules {
		if _, ok := e.RuleNames[r.Id]; !ok {
			return &sentinel.ParseError{File: opts.SnapshotPath, Err: fmt.Errorf("rule %s has no developer name", r.Id)}
		}
	}

	e.index()
	e.check()

	c.data = e

	c.logger.Info("source snapshot loaded", "path", opts.SnapshotPath, "territories", len(e.Territories))

	return nil
}
