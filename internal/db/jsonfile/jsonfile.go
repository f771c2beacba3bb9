// Package jsonfile implements a file-backed key/value store used to persist
// the client session between runs. The whole store is a single JSON object
// kept in memory and flushed to disk on Flush/Close.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/patric-chuzhbe/myflix/internal/logger"
)

type JSONFile struct {
	fileName string
	cache    map[string]string
}

func initStoreFile(fileName string) error {
	storeFile, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(storeFile, `{}`)
	if err != nil {
		return err
	}
	return storeFile.Close()
}

func writeToJSONFile(fileName string, cache interface{}) error {
	jsonData, err := json.MarshalIndent(cache, "", "\t")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %s", err)
	}

	file, err2 := os.OpenFile(fileName, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0600)
	if err2 != nil {
		return fmt.Errorf("error opening file: %s", err2)
	}
	defer file.Close()

	_, err = file.Write(jsonData)
	if err != nil {
		return fmt.Errorf("error writing to file: %s", err)
	}

	return nil
}

func parseJSONFile(fileName string, cache *map[string]string) error {
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	err = decoder.Decode(cache)
	if err != nil {
		return err
	}

	return nil
}

// New opens the store file, creating it when absent. A corrupted file is not
// an error: the store starts empty and the old content is overwritten on the
// next flush, so broken local state degrades to "logged out" instead of
// failing the whole client.
func New(fileName string) (*JSONFile, error) {
	store := JSONFile{
		fileName: fileName,
		cache:    map[string]string{},
	}

	err := parseJSONFile(store.fileName, &store.cache)
	if err != nil {
		if os.IsNotExist(err) {
			err = initStoreFile(fileName)
			if err != nil {
				return nil, err
			}
			err = parseJSONFile(store.fileName, &store.cache)
			if err != nil {
				return nil, err
			}
		} else {
			logger.Log.Warnln("session store file is unreadable, starting empty", "file", fileName, "error", err)
			store.cache = map[string]string{}
		}
	}
	if store.cache == nil {
		store.cache = map[string]string{}
	}

	return &store, nil
}

func (s *JSONFile) Get(key string) (value string, found bool) {
	value, found = s.cache[key]
	return
}

func (s *JSONFile) Put(key, value string) {
	s.cache[key] = value
}

func (s *JSONFile) Delete(key string) {
	delete(s.cache, key)
}

// Flush writes the current store content to disk.
func (s *JSONFile) Flush() error {
	return writeToJSONFile(s.fileName, s.cache)
}

// Close flushes the store to disk.
func (s *JSONFile) Close() error {
	return s.Flush()
}
