// Package credentials loads the IAM user record the qualification submission
// client authenticates with, from the CSV or JSON file the console exports.
package credentials

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Field names as they appear in the console export.
const (
	fieldUserName         = "User name"
	fieldPassword         = "Password"
	fieldAccessKeyID      = "Access key ID"
	fieldSecretAccessKey  = "Secret access key"
	fieldConsoleLoginLink = "Console login link"
)

// Credentials is the five-field IAM user record.
type Credentials struct {
	UserName         string
	Password         string
	AccessKeyID      string
	SecretAccessKey  string
	ConsoleLoginLink string
}

// Load reads credentials from path, dispatching on the file extension:
// .csv expects a header row plus one record, .json a flat object keyed by
// the console field names. Any other suffix fails before the file is opened.
func Load(path string) (Credentials, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".json":
		return loadJSON(path)
	default:
		return Credentials{}, fmt.Errorf("credentials: unknown file extension %q", filepath.Ext(path))
	}
}

func loadCSV(path string) (Credentials, error) {
	file, err := os.Open(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("credentials: open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return Credentials{}, fmt.Errorf("credentials: read header of %s: %w", path, err)
	}
	record, err := reader.Read()
	if err != nil {
		return Credentials{}, fmt.Errorf("credentials: read record of %s: %w", path, err)
	}

	fields := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(record) {
			fields[strings.TrimSpace(name)] = record[i]
		}
	}
	return fromFields(fields)
}

func loadJSON(path string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("credentials: read %s: %w", path, err)
	}
	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		return Credentials{}, fmt.Errorf("credentials: parse %s: %w", path, err)
	}
	return fromFields(fields)
}

func fromFields(fields map[string]string) (Credentials, error) {
	var missing []string
	pick := func(name string) string {
		value, ok := fields[name]
		if !ok {
			missing = append(missing, name)
		}
		return value
	}
	creds := Credentials{
		UserName:         pick(fieldUserName),
		Password:         pick(fieldPassword),
		AccessKeyID:      pick(fieldAccessKeyID),
		SecretAccessKey:  pick(fieldSecretAccessKey),
		ConsoleLoginLink: pick(fieldConsoleLoginLink),
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Credentials{}, fmt.Errorf("credentials: missing fields: %s", strings.Join(missing, ", "))
	}
	return creds, nil
}
