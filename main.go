package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bptree/server"
	"bptree/store"
)

var (
	addr      string
	dir       string
	cacheSize int64
)

var rootCmd = &cobra.Command{
	Use:   "bptree-store",
	Short: "Node storage service for B+ tree nodes",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the node-store API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logrus.New()
		log.SetFormatter(&logrus.JSONFormatter{})

		var st store.Store
		if dir != "" {
			ds, err := store.NewDiskStore(dir)
			if err != nil {
				return err
			}
			st = ds
			log.WithFields(logrus.Fields{"dir": dir, "store_id": ds.ID()}).Info("using disk store")
		} else {
			st = store.NewMemoryStore()
			log.Info("using in-memory store")
		}
		if cacheSize > 0 {
			cs, err := store.NewCachedStore(st, cacheSize)
			if err != nil {
				return err
			}
			st = cs
			log.WithField("bytes", cacheSize).Info("node cache enabled")
		}
		defer st.Close()

		app := server.New(st, log)
		log.WithField("addr", addr).Info("listening")
		return app.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&dir, "dir", "", "store directory (empty for in-memory)")
	serveCmd.Flags().Int64Var(&cacheSize, "cache", 0, "node cache size in bytes (0 disables)")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
