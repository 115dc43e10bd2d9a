package model

import (
	"encoding/gob"
	"io"
	"os"
	"path/filepath"

	"github.com/YuminosukeSato/synthgen/pkg/errors"
)

// Save は値をgob形式でファイルに保存する
// 親ディレクトリが存在しない場合は作成し、既存のファイルは上書きする
//
// 使用例:
//
//	dm := observations.FromRealValues(X)
//	err := model.Save(dm, "experiments/synthetic/0.1/pmf/data.gob")
func Save(v interface{}, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", filename)
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to create file %s", filename)
	}
	defer file.Close()

	if err := SaveToWriter(v, file); err != nil {
		return errors.Wrapf(err, "failed to save %s", filename)
	}
	return nil
}

// Load はgob形式のファイルから値を読み込む
// vはポインタでなければならない
func Load(v interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open file %s", filename)
	}
	defer file.Close()

	if err := LoadFromReader(v, file); err != nil {
		return errors.Wrapf(err, "failed to load %s", filename)
	}
	return nil
}

// SaveToWriter は値をio.Writerに保存する
func SaveToWriter(v interface{}, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode")
	}
	return nil
}

// LoadFromReader はio.Readerから値を読み込む
func LoadFromReader(v interface{}, r io.Reader) error {
	if err := gob.NewDecoder(r).Decode(v); err != nil {
		return errors.Wrap(err, "failed to decode")
	}
	return nil
}
