package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/viant/vecmath/index/bruteforce"
	"github.com/viant/vecmath/vector"
	"github.com/viant/vecmath/vecutil"
)

// storeArgs carries the flags of the store subcommands.
type storeArgs struct {
	op    string
	args  []string
	id    string
	meta  string
	limit int
	k     int
}

func (a *app) storeCmd() *cobra.Command {
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Manage vectors kept in the SQLite database",
	}

	var put storeArgs
	putCmd := &cobra.Command{
		Use:   "put <vector>",
		Short: "Insert or replace a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			put.op, put.args = "put", args
			return a.withStore(cmd, put)
		},
	}
	putCmd.Flags().StringVar(&put.id, "id", "", "record id (generated when empty)")
	putCmd.Flags().StringVar(&put.meta, "meta", "", "opaque metadata stored with the vector")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print a stored vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, storeArgs{op: "get", args: args})
		},
	}

	var list storeArgs
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored vectors of the configured kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list.op = "list"
			return a.withStore(cmd, list)
		},
	}
	listCmd.Flags().IntVar(&list.limit, "limit", 0, "maximum number of records (0 = all)")

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a stored vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, storeArgs{op: "rm", args: args})
		},
	}

	storeCmd.AddCommand(putCmd, getCmd, listCmd, rmCmd)
	return storeCmd
}

func (a *app) nearestCmd() *cobra.Command {
	var s storeArgs
	cmd := &cobra.Command{
		Use:   "nearest <vector>",
		Short: "Rank stored vectors by cosine similarity to a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s.op, s.args = "nearest", args
			return a.withStore(cmd, s)
		},
	}
	cmd.Flags().IntVarP(&s.k, "top", "n", 5, "number of matches (0 = all)")
	return cmd
}

// withStore opens the database and runs s against a store of the configured kind.
func (a *app) withStore(cmd *cobra.Command, s storeArgs) error {
	db, err := a.open()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	opts := []vector.StoreOption{vector.WithLogger(a.log.Logger)}
	w := cmd.OutOrStdout()
	switch k := a.cfg.ElementKind(); k {
	case vector.KindInt32:
		return runStore[int32](ctx, w, a, db, opts, s)
	case vector.KindInt64:
		return runStore[int64](ctx, w, a, db, opts, s)
	case vector.KindInt:
		return runStore[int](ctx, w, a, db, opts, s)
	case vector.KindFloat32:
		return runStore[float32](ctx, w, a, db, opts, s)
	case vector.KindFloat64:
		return runStore[float64](ctx, w, a, db, opts, s)
	default:
		return unsupportedKind(k)
	}
}

func runStore[T vector.Scalar](ctx context.Context, w io.Writer, a *app, db *sql.DB, opts []vector.StoreOption, s storeArgs) error {
	store, err := vector.NewSQLiteStore[T](db, opts...)
	if err != nil {
		return err
	}
	mode := a.cfg.Mode()
	switch s.op {
	case "put":
		v, err := vecutil.Parse[T](s.args[0])
		if err != nil {
			return err
		}
		ids, err := store.Put(ctx, []vector.Record[T]{{ID: s.id, Vector: v, Meta: s.meta}})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, ids[0])
		return err
	case "get":
		r, err := store.Get(ctx, s.args[0])
		if err != nil {
			return err
		}
		return printRecord(w, r, mode)
	case "list":
		records, err := store.List(ctx, s.limit)
		if err != nil {
			return err
		}
		for _, r := range records {
			if err := printRecord(w, r, mode); err != nil {
				return err
			}
		}
		return nil
	case "rm":
		return store.Remove(ctx, s.args[0])
	case "nearest":
		return nearest[T](ctx, w, a, store, s)
	}
	return fmt.Errorf("unknown store operation %q", s.op)
}

func nearest[T vector.Scalar](ctx context.Context, w io.Writer, a *app, store vector.Store[T], s storeArgs) error {
	query, err := vecutil.Parse[T](s.args[0])
	if err != nil {
		return err
	}
	records, err := store.List(ctx, 0)
	if err != nil {
		return err
	}
	ids := make([]string, len(records))
	vecs := make([]*vector.Vector[float32], len(records))
	for i, r := range records {
		ids[i] = r.ID
		vecs[i] = vector.Cast[T, float32](r.Vector)
	}
	var idx bruteforce.Index
	if err := idx.Build(ids, vecs); err != nil {
		return err
	}
	matches, scores, err := idx.Query(vector.Cast[T, float32](query), s.k)
	a.log.LogQuery(ctx, s.k, len(matches), err)
	if err != nil {
		return err
	}
	for i, id := range matches {
		if _, err := fmt.Fprintf(w, "%s\t%.6f\n", id, scores[i]); err != nil {
			return err
		}
	}
	return nil
}

func printRecord[T vector.Scalar](w io.Writer, r vector.Record[T], mode vector.Mode) error {
	if r.Meta != "" {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Vector.Text(mode), r.Meta)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\t%s\n", r.ID, r.Vector.Text(mode))
	return err
}
