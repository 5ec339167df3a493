package config

import (
	"bufio"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/salleya/Hash-and-Heap/lib/logger"
)

type DictProperties struct {
	Capacity     int    `cfg:"capacity"`
	HashFunction string `cfg:"hash-function"`
	FullScan     bool   `cfg:"full-scan"`
	LogLevel     string `cfg:"log-level"`
}

var Properties *DictProperties

func init() {
	Properties = defaults()
}

func defaults() *DictProperties {
	return &DictProperties{
		Capacity:     16,
		HashFunction: "hash1",
		FullScan:     false,
		LogLevel:     "info",
	}
}

// Setup 从 reader 读取配置并替换全局的 Properties，未出现的配置项保持默认值
func Setup(reader io.Reader) error {
	p, err := Parse(reader)
	if err != nil {
		return err
	}
	if level, ok := logger.ParseLevel(p.LogLevel); ok {
		logger.SetLevel(level)
	} else {
		logger.Warnf("unknown log-level %q, keeping current level", p.LogLevel)
	}
	Properties = p
	return nil
}

func Parse(reader io.Reader) (*DictProperties, error) {
	res := defaults()
	m := make(map[string]string)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) > 0 && line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[0:pivot]
			val := strings.Trim(line[pivot+1:], " ")
			m[strings.ToLower(key)] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := fillProperties(res, m); err != nil {
		return nil, err
	}
	return res, nil
}

func fillProperties(p *DictProperties, m map[string]string) error {
	fields := reflect.TypeOf(p).Elem()
	values := reflect.ValueOf(p).Elem()
	n := fields.NumField()
	for i := 0; i < n; i++ {
		field := fields.Field(i)
		fieldVal := values.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		val, ok := m[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(val)
		case reflect.Int:
			intV, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return errors.Wrapf(err, "config %s", key)
			}
			fieldVal.SetInt(intV)
		case reflect.Bool:
			fieldVal.SetBool("yes" == val)
		}
	}
	return nil
}
