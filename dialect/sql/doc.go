// Package sql implements the Jennifer adapter core for database/sql based
// databases: the connection pool facade, the scope-keyed transaction
// registry, the statement execution engine and the transaction manager.
//
// Higher layers (query builder, migrations) never touch the pool directly.
// They call Exec, Query or Scalar on a Driver; the engine consults the
// transaction registry to decide which physical connection a statement runs
// on, and falls back to a scoped checkout/release when no transaction is
// bound to the calling scope:
//
//	drv, err := sql.Open(dialect.MySQL, dsn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
//
//	err = drv.Transaction(ctx, func(ctx context.Context, _ *sql.Tx) error {
//	    // Both statements run on the transaction's connection.
//	    if _, err := drv.Exec(ctx, "INSERT INTO users (name) VALUES (?)", "a"); err != nil {
//	        return err
//	    }
//	    _, err := drv.Exec(ctx, "INSERT INTO users (name) VALUES (?)", "b")
//	    return err
//	})
//
// A nested Transaction call reuses the enclosing physical transaction;
// exactly one begin/commit pair is issued per scope.
package sql
