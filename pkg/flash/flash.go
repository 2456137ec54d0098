// Package flash carries one-time status messages across a redirect using a
// short-lived server-side session entry. A message is consumed and cleared
// on the first read after it is set.
package flash

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	LevelSuccess = "success"
	LevelDanger  = "danger"

	levelKey   = "flash_level"
	messageKey = "flash_message"
)

type Message struct {
	Level string
	Text  string
}

type Store struct {
	sessions *session.Store
}

func New() *Store {
	return &Store{
		sessions: session.New(session.Config{
			Expiration:     10 * time.Minute,
			CookieHTTPOnly: true,
		}),
	}
}

func (s *Store) Success(c *fiber.Ctx, text string) error {
	return s.set(c, LevelSuccess, text)
}

func (s *Store) Danger(c *fiber.Ctx, text string) error {
	return s.set(c, LevelDanger, text)
}

func (s *Store) set(c *fiber.Ctx, level, text string) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(levelKey, level)
	sess.Set(messageKey, text)
	return sess.Save()
}

// Take returns the pending message, if any, and clears it so a second read
// comes back empty.
func (s *Store) Take(c *fiber.Ctx) (Message, bool) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return Message{}, false
	}

	level, _ := sess.Get(levelKey).(string)
	text, _ := sess.Get(messageKey).(string)
	if text == "" {
		return Message{}, false
	}

	sess.Delete(levelKey)
	sess.Delete(messageKey)
	_ = sess.Save()

	return Message{Level: level, Text: text}, true
}
