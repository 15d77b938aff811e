// Package store persists the current goal, its tasks and finished focus
// sessions in a bbolt database
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/solosprint/sprint/internal/models"
	"github.com/solosprint/sprint/internal/timeutil"
)

const (
	workspaceBucket = "workspace"
	sessionBucket   = "sessions"
	goalKey         = "goal"
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) Workspace() (*models.Goal, error) {
	var goal *models.Goal

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(workspaceBucket)).Get([]byte(goalKey))
		if len(b) == 0 {
			return nil
		}

		goal = &models.Goal{}

		if err := json.Unmarshal(b, goal); err != nil {
			return errCorruptRecord.Fmt("workspace").Wrap(err)
		}

		return nil
	})

	return goal, err
}

func (c *Client) SaveWorkspace(goal *models.Goal) error {
	value, err := json.Marshal(goal)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(workspaceBucket)).Put([]byte(goalKey), value)
	})
}

func (c *Client) ResetWorkspace() error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(workspaceBucket)).Delete([]byte(goalKey))
	})
}

func (c *Client) SaveSession(sess *models.FocusSession) error {
	if !sess.Ended() {
		return errSessionActive.Fmt(sess.ID)
	}

	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).
			Put(timeutil.ToKey(sess.StartTime), value)
	})
}

func (c *Client) GetSessions(
	startTime, endTime time.Time,
	goalID string,
) ([]models.FocusSession, error) {
	var sessions []models.FocusSession

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()
		minKey := timeutil.ToKey(startTime)
		maxKey := timeutil.ToKey(endTime)

		sk, sv := cur.Seek(minKey)

		// include the previous session if it ended inside the range
		pk, pv := cur.Prev()
		if pk != nil {
			var prev models.FocusSession
			if err := json.Unmarshal(pv, &prev); err != nil {
				return errCorruptRecord.Fmt("session").Wrap(err)
			}

			if prev.EndTime != nil && prev.EndTime.After(startTime) {
				sk, sv = pk, pv
			} else {
				sk, sv = cur.Next()
			}
		} else {
			sk, sv = cur.Seek(minKey)
		}

		for k, v := sk, sv; k != nil && bytes.Compare(k, maxKey) <= 0; k, v = cur.Next() {
			var sess models.FocusSession
			if err := json.Unmarshal(v, &sess); err != nil {
				return errCorruptRecord.Fmt("session").Wrap(err)
			}

			if goalID != "" && sess.GoalID != goalID {
				continue
			}

			sessions = append(sessions, sess)
		}

		return nil
	})

	return sessions, err
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// InUse reports whether another process, usually a running focus session,
// holds the database lock.
func InUse(dbPath string) (bool, error) {
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	if err == nil {
		return false, db.Close()
	}

	if errors.Is(err, bolt.ErrTimeout) {
		return true, nil
	}

	return false, err
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{workspaceBucket, sessionBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
