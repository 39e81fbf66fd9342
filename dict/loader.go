package dict

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Member names of a dictionary archive.
const (
	MorphDictFileName      = "morph.dict"
	POSDictFileName        = "pos.dict"
	ContentMetaFileName    = "content.meta"
	ContentDictFileName    = "content.dict"
	IndexDictFileName      = "index.dict"
	ConnectionDictFileName = "connection.dict"
	CharDefDictFileName    = "chardef.dict"
	UnkDictFileName        = "unk.dict"
	DictInfoFileName       = "dict.info"
)

// MaxArchiveSize is the size limit for dictionary archives.
const MaxArchiveSize = 500 * 1024 * 1024

const (
	contentRowDelimiter = '\n'
	contentColDelimiter = '\a'
)

// ErrArchiveTooLarge is returned for archives beyond MaxArchiveSize.
var ErrArchiveTooLarge = errors.New("dict: dictionary archive too large")

// LoadArchive reads a complete dictionary from a ZIP archive laid out
// in the kagome on-disk format. With full set to false the feature
// rows (content.dict) are skipped, which roughly halves the memory
// footprint at the cost of empty token features.
func LoadArchive(path string, full bool) (*Dict, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("dict: open archive: %w", err)
	}
	if st.Size() > MaxArchiveSize {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrArchiveTooLarge, path, st.Size())
	}
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("dict: open archive: %w", err)
	}
	defer zr.Close()

	d := new(Dict)
	idx := new(IndexTable)
	d.Index = idx
	for _, f := range zr.File {
		if !full && f.Name == ContentDictFileName {
			continue
		}
		if err := loadMember(d, idx, f); err != nil {
			return nil, fmt.Errorf("dict: archive member %s: %w", f.Name, err)
		}
	}
	if len(d.CharDef.Category) == 0 {
		// archives without character definitions still need unknown-word
		// classification
		d.CharDef = builtinCharDef()
	}
	tracer().P("dict", path).Infof("loaded dictionary: %d morphs, %d contents",
		len(d.Morphs), len(d.Contents))
	return d, nil
}

func loadMember(d *Dict, idx *IndexTable, f *zip.File) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	switch f.Name {
	case MorphDictFileName:
		d.Morphs, err = readMorphs(rc)
	case POSDictFileName:
		err = gob.NewDecoder(rc).Decode(&d.POSTable)
	case ContentMetaFileName:
		err = gob.NewDecoder(rc).Decode(&d.ContentsMeta)
	case ContentDictFileName:
		d.Contents, err = readContents(rc)
	case IndexDictFileName:
		err = readIndex(rc, idx)
	case ConnectionDictFileName:
		err = readConnection(rc, &d.Connection)
	case CharDefDictFileName:
		err = gob.NewDecoder(rc).Decode(&d.CharDef)
	case UnkDictFileName:
		err = gob.NewDecoder(rc).Decode(&d.UnkDict)
	case DictInfoFileName:
		info := new(Info)
		if derr := gob.NewDecoder(rc).Decode(info); derr != nil {
			tracer().Errorf("dictionary info unreadable: %v", derr)
		} else {
			d.Info = info
		}
	default:
		tracer().Infof("ignoring unknown archive member %s", f.Name)
	}
	return err
}

func readMorphs(r io.Reader) ([]Morph, error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	if n > 10_000_000 {
		return nil, fmt.Errorf("implausible morph count %d", n)
	}
	morphs := make([]Morph, n)
	if err := binary.Read(r, binary.LittleEndian, morphs); err != nil {
		return nil, err
	}
	return morphs, nil
}

func readIndex(r io.Reader, idx *IndexTable) error {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return err
	}
	if n > 10_000_000 {
		return fmt.Errorf("implausible double-array size %d", n)
	}
	idx.Da = make([]DANode, n)
	if err := binary.Read(r, binary.LittleEndian, idx.Da); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return err
	}
	if n > 1_000_000 {
		return fmt.Errorf("implausible dup count %d", n)
	}
	idx.Dup = make(map[int32]int32, n)
	for i := uint64(0); i < n; i++ {
		var kv [2]int32
		if err := binary.Read(r, binary.LittleEndian, &kv); err != nil {
			return err
		}
		idx.Dup[kv[0]] = kv[1]
	}
	return nil
}

func readConnection(r io.Reader, t *ConnectionTable) error {
	var row, col uint64
	if err := binary.Read(r, binary.LittleEndian, &row); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &col); err != nil {
		return err
	}
	if row > 100_000 || col > 100_000 {
		return fmt.Errorf("implausible connection matrix %dx%d", row, col)
	}
	t.Row, t.Col = int64(row), int64(col)
	t.Vec = make([]int16, row*col)
	return binary.Read(r, binary.LittleEndian, t.Vec)
}

func readContents(r io.Reader) (Contents, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var contents Contents
	for len(buf) > 0 {
		row := buf
		if i := bytes.IndexByte(buf, contentRowDelimiter); i >= 0 {
			row, buf = buf[:i], buf[i+1:]
		} else {
			buf = nil
		}
		if len(row) == 0 {
			continue
		}
		contents = append(contents, strings.Split(string(row), string(contentColDelimiter)))
	}
	return contents, nil
}
