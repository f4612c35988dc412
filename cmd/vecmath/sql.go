package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/vecmath/vector"
	"github.com/viant/vecmath/vecutil"
)

func (a *app) sqlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sql <query> [vector...]",
		Short: "Run a SQL query with the vec_* functions available",
		Long: `Run a SQL query against the configured database. Extra arguments are parsed
as vectors of the configured kind and bound to the query's ? placeholders.
BLOB results holding encoded vectors are printed as text.`,
		Example: `  vecmath sql "SELECT vec_dot(?, ?)" 1,2 3,4
  vecmath sql "SELECT id, vec_norm(data) FROM vectors"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.open()
			if err != nil {
				return err
			}
			defer db.Close()

			binds := make([]any, 0, len(args)-1)
			for _, s := range args[1:] {
				blob, err := encodeArg(a.cfg.ElementKind(), s)
				if err != nil {
					return err
				}
				binds = append(binds, blob)
			}
			rows, err := db.QueryContext(cmd.Context(), args[0], binds...)
			if err != nil {
				return err
			}
			defer rows.Close()

			cols, err := rows.Columns()
			if err != nil {
				return err
			}
			values := make([]any, len(cols))
			ptrs := make([]any, len(cols))
			for i := range values {
				ptrs[i] = &values[i]
			}
			w := cmd.OutOrStdout()
			for rows.Next() {
				if err := rows.Scan(ptrs...); err != nil {
					return err
				}
				if err := printRow(w, values, a.cfg.Mode()); err != nil {
					return err
				}
			}
			return rows.Err()
		},
	}
}

func encodeArg(kind vector.Kind, s string) ([]byte, error) {
	switch kind {
	case vector.KindInt32:
		return parseEncode[int32](s)
	case vector.KindInt64:
		return parseEncode[int64](s)
	case vector.KindInt:
		return parseEncode[int](s)
	case vector.KindFloat32:
		return parseEncode[float32](s)
	case vector.KindFloat64:
		return parseEncode[float64](s)
	}
	return nil, unsupportedKind(kind)
}

func parseEncode[T vector.Scalar](s string) ([]byte, error) {
	v, err := vecutil.Parse[T](s)
	if err != nil {
		return nil, err
	}
	return vector.Encode(v)
}

func printRow(w io.Writer, values []any, mode vector.Mode) error {
	cells := make([]string, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case nil:
			cells[i] = "NULL"
		case []byte:
			cells[i] = blobText(x, mode)
		default:
			cells[i] = fmt.Sprint(x)
		}
	}
	_, err := fmt.Fprintln(w, strings.Join(cells, "\t"))
	return err
}

// blobText renders an encoded vector, falling back to hex for other BLOBs.
func blobText(b []byte, mode vector.Mode) string {
	kind, err := vector.KindOf(b)
	if err != nil {
		return fmt.Sprintf("x'%x'", b)
	}
	var text string
	switch kind {
	case vector.KindInt32:
		text, err = decodeText[int32](b, mode)
	case vector.KindInt64:
		text, err = decodeText[int64](b, mode)
	case vector.KindInt:
		text, err = decodeText[int](b, mode)
	case vector.KindFloat32:
		text, err = decodeText[float32](b, mode)
	case vector.KindFloat64:
		text, err = decodeText[float64](b, mode)
	}
	if err != nil {
		return fmt.Sprintf("x'%x'", b)
	}
	return text
}

func decodeText[T vector.Scalar](b []byte, mode vector.Mode) (string, error) {
	v, err := vector.Decode[T](b)
	if err != nil {
		return "", err
	}
	return v.Text(mode), nil
}
