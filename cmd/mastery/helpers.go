package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/money-mastery/internal/config"
	"github.com/Veraticus/money-mastery/internal/ledger"
	"github.com/Veraticus/money-mastery/internal/remote"
	"github.com/Veraticus/money-mastery/internal/storage"
	"github.com/Veraticus/money-mastery/internal/syncer"
	"github.com/Veraticus/money-mastery/internal/validate"
)

// app bundles the wired services behind every command.
type app struct {
	kv          storage.KV
	store       *storage.Store
	ledger      *ledger.Service
	remote      *remote.Client
	coordinator *syncer.Coordinator
}

// initApp wires storage, ledger, remote, and sync from config. An
// unopenable database degrades to in-memory operation rather than
// failing the command; a missing remote config leaves sync disabled.
// The coordinator's background pusher runs until ctx is canceled.
func initApp(ctx context.Context) *app {
	dbPath := viper.GetString("storage.path")
	if dbPath == "" {
		dbPath = config.DefaultDataPath()
	}
	dbPath = config.ExpandPath(dbPath)

	var kv storage.KV
	sqlKV, err := storage.NewSQLiteKV(dbPath)
	if err != nil {
		slog.Warn("local storage unavailable, changes will not persist", "path", dbPath, "error", err)
		kv = storage.Unavailable{}
	} else {
		kv = sqlKV
	}

	store := storage.NewStore(kv)

	var remoteClient *remote.Client
	if url := viper.GetString("remote.url"); url != "" {
		remoteClient, err = remote.NewClient(url, viper.GetString("remote.anon_key"))
		if err != nil {
			slog.Warn("remote sync disabled", "error", err)
			remoteClient = nil
		}
	}

	var rs syncer.RemoteStore
	if remoteClient != nil {
		rs = remoteClient
	}

	coordinator := syncer.New(store, rs)
	coordinator.Start(ctx)

	return &app{
		kv:          kv,
		store:       store,
		ledger:      ledger.New(store),
		remote:      remoteClient,
		coordinator: coordinator,
	}
}

// Close flushes any pending background push and releases storage.
func (a *app) Close(ctx context.Context) {
	a.coordinator.Flush(ctx)
	if err := a.kv.Close(); err != nil {
		slog.Debug("failed to close storage", "error", err)
	}
}

// strFlag returns a pointer to the flag value when it was set, for
// partial updates where "not provided" must differ from the zero value.
func strFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// boolFlag returns a pointer to the flag value when it was set.
func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

// amountFlag parses a monetary flag value when it was set.
func amountFlag(cmd *cobra.Command, name string) (*float64, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	raw, _ := cmd.Flags().GetString(name)
	f, err := validate.Amount(name, raw)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// intFlag returns a pointer to the flag value when it was set.
func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}
