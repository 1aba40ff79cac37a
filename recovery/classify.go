package recovery

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type EntryKind int

const (
	OtherEntry EntryKind = iota
	ConfigEntry
	ExtentEntry
)

const CONFIG_EXTENSION = ".vmx"

var (
	ExtentNameRegex = regexp.MustCompile(`-s([0-9]+)\.vmdk$`)
)

func (self EntryKind) String() string {
	switch self {
	case ConfigEntry:
		return "config"
	case ExtentEntry:
		return "extent"
	}
	return "other"
}

// Entry is a directory entry classified by its name.
type Entry struct {
	Name string
	Kind EntryKind

	// Numeric extent index parsed from the name, only for ExtentEntry.
	Index uint64
}

func ClassifyEntry(name string, is_dir bool) Entry {
	res := Entry{Name: name}
	if is_dir {
		return res
	}

	if strings.HasSuffix(name, CONFIG_EXTENSION) {
		res.Kind = ConfigEntry
		return res
	}

	match := ExtentNameRegex.FindStringSubmatch(name)
	if len(match) > 0 {
		index, err := strconv.ParseUint(match[1], 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			// Still an extent. It sorts after every other index.
			index = math.MaxUint64
		}
		res.Kind = ExtentEntry
		res.Index = index
	}

	return res
}
