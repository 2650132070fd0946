package uohues

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bodgit/uohues/hue"
	_ "github.com/mattn/go-sqlite3"
)

type HueDB struct {
	db *sql.DB
}

func NewHueDB(file string) (*HueDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS source (id INTEGER PRIMARY KEY NOT NULL, path TEXT NOT NULL, crc TEXT NOT NULL UNIQUE, imported INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS hue (id INTEGER PRIMARY KEY NOT NULL, source_id INTEGER NOT NULL, idx INTEGER NOT NULL, name TEXT NOT NULL, range_start INTEGER NOT NULL, range_end INTEGER NOT NULL, FOREIGN KEY(source_id) REFERENCES source(id))"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS color (hue_id INTEGER NOT NULL, slot INTEGER NOT NULL, word INTEGER NOT NULL, r INTEGER NOT NULL, g INTEGER NOT NULL, b INTEGER NOT NULL, FOREIGN KEY(hue_id) REFERENCES hue(id))"); err != nil {
		return nil, err
	}

	return &HueDB{
		db: db,
	}, nil
}

func (db *HueDB) Close() error {
	return db.db.Close()
}

// Store saves a decoded hue table under the CRC of the file it came from,
// replacing any previous import of the same file.
func (db *HueDB) Store(path, crc string, hues []hue.Hue) error {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id int64
	switch err := tx.QueryRow("SELECT id FROM source WHERE crc = ?", crc).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := tx.Exec("INSERT INTO source (path, crc, imported) VALUES (?, ?, ?)", path, crc, time.Now().Unix())
		if err != nil {
			return err
		}
		if id, err = result.LastInsertId(); err != nil {
			return err
		}
	case nil:
		if _, err := tx.Exec("DELETE FROM color WHERE hue_id IN (SELECT id FROM hue WHERE source_id = ?)", id); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM hue WHERE source_id = ?", id); err != nil {
			return err
		}
		if _, err := tx.Exec("UPDATE source SET path = ?, imported = ? WHERE id = ?", path, time.Now().Unix(), id); err != nil {
			return err
		}
	default:
		return err
	}

	for _, h := range hues {
		result, err := tx.Exec("INSERT INTO hue (source_id, idx, name, range_start, range_end) VALUES (?, ?, ?, ?, ?)", id, h.Index, h.Name, h.Start, h.End)
		if err != nil {
			return err
		}
		hueID, err := result.LastInsertId()
		if err != nil {
			return err
		}

		for slot, word := range h.Colors16 {
			rgb := h.ColorsRGB[slot]
			if _, err := tx.Exec("INSERT INTO color (hue_id, slot, word, r, g, b) VALUES (?, ?, ?, ?, ?, ?)", hueID, slot, word, rgb.R, rgb.G, rgb.B); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// Import decodes the named hue table and stores it in the database.
func (u *UOHues) Import(file string) error {
	hues, err := hue.DecodeFile(file)
	if err != nil {
		return err
	}
	if len(hues) == 0 {
		return ErrNoHues
	}

	crc, err := crcFile(file)
	if err != nil {
		return err
	}

	if err := u.db.Store(file, crc, hues); err != nil {
		return err
	}

	u.logger.Printf("Imported %d hues from \"%s\", CRC \"%s\"\n", len(hues), file, crc)

	return nil
}
