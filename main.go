package main

import (
	"fmt"
	"os"

	"github.com/tuannh982/hashtable/hashtable"
	"github.com/tuannh982/hashtable/utils/collections"
	"github.com/xyproto/env/v2"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	level, err := log.ParseLevel(env.Str("HASHTABLE_LOG_LEVEL", "debug"))
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(level)
	logger := log.WithFields(log.Fields{"component": "demo"})

	cfg := hashtable.ConfigFromEnv()
	cfg.Logger = log.WithFields(log.Fields{"component": "hashtable", "hasher": cfg.Hasher})
	m, err := hashtable.NewWithConfig[string, any](cfg)
	if err != nil {
		logger.WithError(err).Error("could not create table")
		os.Exit(1)
	}

	m.Set("key", "value")
	v, _ := m.Get("key")
	logger.Info("get key=", v, " has key=", m.Has("key"), " has foo=", m.Has("foo"))
	logger.Info("delete key=", m.Delete("key"), " delete foo=", m.Delete("foo"))
	report(logger, m)

	m.Set("foo", "bar").Set("fooAgain", "barAgain").Set("a", 1).Set("b", 2)
	m.ForEach(func(k string, v any) {
		fmt.Printf("%s => %v\n", k, v)
	})
	report(logger, m)

	m.Delete("a")
	m.Delete("b")
	report(logger, m)

	logger.Info("intersection=", collections.Intersect([]string{"a", "b", "c"}, []string{"c", "d", "a"}))
}

func report(logger *log.Entry, m *hashtable.Table[string, any]) {
	b, err := m.Stats().JSON()
	if err != nil {
		logger.WithError(err).Warn("could not encode stats")
		return
	}
	fmt.Println("REPORT", string(b))
}
