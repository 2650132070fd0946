/*
Package uohues is a library for working with the hue table shipped with
Ultima Online clients, normally found as hues.mul in the client directory.
*/
package uohues

import (
	"errors"
	"log"
)

// ErrNoHues is returned when a source file was readable but yielded no hue
// entries, which usually means it is empty or not a hue table at all.
var ErrNoHues = errors.New("no hues found")

type UOHues struct {
	db     *HueDB
	logger *log.Logger
}

func New(db string, logger *log.Logger) (*UOHues, error) {
	hueDB, err := NewHueDB(db)
	if err != nil {
		return nil, err
	}

	return &UOHues{
		db:     hueDB,
		logger: logger,
	}, nil
}

func (u *UOHues) Close() error {
	return u.db.Close()
}
