package completion

// Candidate tables, one per grammatical context. Order within a table does
// not matter; init sorts by priority then label.

var statementStart = []Item{
	{
		Label: "SELECT", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Returns one or more rows from a single table.",
			Example:  "SELECT name, email FROM users WHERE id = 62c36092-82a1-3a00-93d1-46196ee77204;",
			Notes:    []string{"Selecting without a restriction on the partition key scans every node; restrict on the partition key or expect `ALLOW FILTERING` warnings."},
		},
	},
	{
		Label: "INSERT", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Inserts an entire row or upserts data into existing rows.",
			Example:  "INSERT INTO users (id, name) VALUES (uuid(), 'Alice');",
			Notes:    []string{"Inserts are upserts: writing to an existing primary key overwrites the row without error."},
		},
	},
	{
		Label: "UPDATE", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Modifies one or more column values of a row, creating it if it does not exist.",
			Example:  "UPDATE users SET email = 'alice@example.com' WHERE id = 62c36092-82a1-3a00-93d1-46196ee77204;",
		},
	},
	{
		Label: "DELETE", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Removes entire rows or selected columns from rows.",
			Example:  "DELETE FROM users WHERE id = 62c36092-82a1-3a00-93d1-46196ee77204;",
		},
	},
	{
		Label: "CREATE", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Defines a new schema object: keyspace, table, index, type, or role.",
			Example:  "CREATE TABLE users (id uuid PRIMARY KEY, name text);",
		},
	},
	{
		Label: "ALTER", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Changes the definition of an existing schema object.",
			Example:  "ALTER TABLE users ADD email text;",
		},
	},
	{
		Label: "DROP", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Removes a schema object and all data it contains.",
			Example:  "DROP TABLE IF EXISTS users;",
			Notes:    []string{"Dropping a table immediately removes its data from the cluster; snapshots are the only way back."},
		},
	},
	{
		Label: "TRUNCATE", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Removes all data from a table without dropping its definition.",
			Example:  "TRUNCATE users;",
		},
	},
	{
		Label: "USE", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Selects the keyspace that unqualified table names resolve against for the current session.",
			Example:  "USE killrvideo;",
		},
	},
	{
		Label: "BEGIN BATCH", InsertText: "BEGIN BATCH\n\t${1}\nAPPLY BATCH;", Kind: Snippet, IsSnippet: true, priority: 2,
		Doc: Documentation{
			Synopsis: "Groups multiple INSERT, UPDATE and DELETE statements into one atomic operation.",
			Example:  "BEGIN BATCH\n  INSERT INTO users (id, name) VALUES (uuid(), 'Alice');\n  UPDATE counters SET signups = signups + 1 WHERE day = '2024-01-01';\nAPPLY BATCH;",
			Notes:    []string{"Batches are not a performance optimization; use them only for writes that must succeed together."},
		},
	},
}

var postCreate = []Item{
	{
		Label: "TABLE", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Creates a new table in the selected keyspace.",
			Example:  "CREATE TABLE users (\n  id uuid,\n  name text,\n  PRIMARY KEY (id)\n);",
			Notes:    []string{"Use `IF NOT EXISTS` to suppress the error message if the table already exists; no table is created."},
		},
	},
	{
		Label: "KEYSPACE", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Creates a top-level namespace and sets its replication strategy.",
			Example:  "CREATE KEYSPACE killrvideo\n  WITH replication = {'class': 'NetworkTopologyStrategy', 'dc1': 3};",
		},
	},
	{
		Label: "TYPE", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Creates a custom data type in the keyspace that contains one or more fields of related information, such as an address (street, city, state, and postal code).",
			Example:  "CREATE TYPE address (\n  street text,\n  city text,\n  zip int\n);",
			Notes: []string{
				"The scope of a user-defined type (UDT) is keyspace-wide.",
				"UDTs cannot contain counter fields.",
			},
		},
	},
	{
		Label: "INDEX", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Creates a secondary index on a column, allowing restriction on it in SELECT statements.",
			Example:  "CREATE INDEX users_by_name ON users (name);",
			Notes:    []string{"Secondary indexes are local to each node; queries through them fan out to the whole cluster unless the partition key is also restricted."},
		},
	},
	{
		Label: "MATERIALIZED VIEW", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Creates a server-maintained view of a base table with a different primary key.",
			Example:  "CREATE MATERIALIZED VIEW users_by_email AS\n  SELECT * FROM users\n  WHERE email IS NOT NULL AND id IS NOT NULL\n  PRIMARY KEY (email, id);",
		},
	},
	{
		Label: "ROLE", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Creates a new role for authentication and authorization, optionally with a password and superuser status.",
			Example:  "CREATE ROLE alice WITH PASSWORD = 'secret' AND LOGIN = true;",
		},
	},
	{
		Label: "USER", Kind: Keyword, Deprecated: true, priority: 2,
		Doc: Documentation{
			Synopsis: "Defines a new database user account. By default user accounts do not have superuser status.",
			Example:  "CREATE USER alice WITH PASSWORD 'secret' NOSUPERUSER;",
			Notes: []string{
				"`CREATE USER` is deprecated and included for backwards compatibility only; authentication and authorization are based on roles, so use `CREATE ROLE` instead.",
				"Enclose the user name in single quotation marks if it contains non-alphanumeric characters. You cannot recreate an existing user; to change superuser status or passwords, use `ALTER USER`.",
			},
		},
	},
	{
		Label: "FUNCTION", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Creates a user-defined function executed on query results.",
			Example:  "CREATE FUNCTION avg_state(state tuple<int, bigint>, val int)\n  CALLED ON NULL INPUT\n  RETURNS tuple<int, bigint>\n  LANGUAGE java AS '...';",
		},
	},
	{
		Label: "AGGREGATE", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Creates a user-defined aggregate built from a state function and an optional final function.",
			Example:  "CREATE AGGREGATE average(int)\n  SFUNC avg_state STYPE tuple<int, bigint>\n  FINALFUNC avg_final INITCOND (0, 0);",
		},
	},
	{
		Label: "TRIGGER", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Registers a server-side trigger class invoked before mutations are applied to a table.",
			Example:  "CREATE TRIGGER audit ON users USING 'org.example.AuditTrigger';",
		},
	},
}

var postDrop = []Item{
	{
		Label: "TABLE", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Removes a table and every row it contains.",
			Example:  "DROP TABLE IF EXISTS users;",
		},
	},
	{
		Label: "KEYSPACE", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Removes a keyspace with all its tables, types and data.",
			Example:  "DROP KEYSPACE killrvideo;",
		},
	},
	{
		Label: "TYPE", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Removes a user-defined type that no table or other type references.",
			Example:  "DROP TYPE address;",
		},
	},
	{
		Label: "INDEX", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Removes a secondary index.",
			Example:  "DROP INDEX users_by_name;",
		},
	},
	{
		Label: "MATERIALIZED VIEW", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Removes a materialized view, leaving its base table untouched.",
			Example:  "DROP MATERIALIZED VIEW users_by_email;",
		},
	},
	{
		Label: "ROLE", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Removes a role.",
			Example:  "DROP ROLE alice;",
		},
	},
	{
		Label: "USER", Kind: Keyword, Deprecated: true, priority: 2,
		Doc: Documentation{
			Synopsis: "Removes a user account; deprecated in favor of `DROP ROLE`.",
			Example:  "DROP USER alice;",
		},
	},
	{
		Label: "FUNCTION", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Removes a user-defined function.",
			Example:  "DROP FUNCTION avg_state;",
		},
	},
	{
		Label: "AGGREGATE", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Removes a user-defined aggregate.",
			Example:  "DROP AGGREGATE average;",
		},
	},
	{
		Label: "TRIGGER", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Unregisters a trigger from a table.",
			Example:  "DROP TRIGGER audit ON users;",
		},
	},
}

var postAlter = []Item{
	{
		Label: "TABLE", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Adds columns to a table or changes its properties. Existing column types cannot change.",
			Example:  "ALTER TABLE users ADD email text;",
		},
	},
	{
		Label: "KEYSPACE", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Changes a keyspace's replication strategy or durable-writes setting.",
			Example:  "ALTER KEYSPACE killrvideo\n  WITH replication = {'class': 'NetworkTopologyStrategy', 'dc1': 5};",
		},
	},
	{
		Label: "TYPE", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Adds fields to a user-defined type or renames existing ones.",
			Example:  "ALTER TYPE address ADD country text;",
		},
	},
	{
		Label: "MATERIALIZED VIEW", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Changes the properties of a materialized view.",
			Example:  "ALTER MATERIALIZED VIEW users_by_email WITH comment = 'lookup by email';",
		},
	},
	{
		Label: "ROLE", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Changes a role's password, login flag or superuser status.",
			Example:  "ALTER ROLE alice WITH PASSWORD = 'new-secret';",
		},
	},
	{
		Label: "USER", Kind: Keyword, Deprecated: true, priority: 2,
		Doc: Documentation{
			Synopsis: "Changes a user account; deprecated in favor of `ALTER ROLE`.",
			Example:  "ALTER USER alice WITH PASSWORD 'new-secret';",
		},
	},
}

var createTableName = []Item{
	{
		Label: "IF NOT EXISTS", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Suppresses the error if a table of the same name already exists; no table is created.",
			Example:  "CREATE TABLE IF NOT EXISTS users (id uuid PRIMARY KEY);",
		},
	},
}

var selectColumns = []Item{
	{
		Label: "*", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Selects every column of the table.",
			Example:  "SELECT * FROM users;",
		},
	},
	{
		Label: "DISTINCT", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Returns only distinct partition key values.",
			Example:  "SELECT DISTINCT country FROM users_by_country;",
			Notes:    []string{"`DISTINCT` applies to partition key and static columns only."},
		},
	},
	{
		Label: "JSON", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Returns each row as a single JSON-encoded column.",
			Example:  "SELECT JSON name, email FROM users;",
		},
	},
	{
		Label: "FROM", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Names the table the statement reads from.",
			Example:  "SELECT name FROM users;",
		},
	},
	{
		Label: "COUNT", InsertText: "COUNT(${1:*})", Kind: Function, IsSnippet: true, priority: 2,
		Doc: Documentation{
			Synopsis: "Counts the rows (or non-null values) matched by the statement.",
			Example:  "SELECT COUNT(*) FROM users WHERE country = 'NL';",
		},
	},
	{
		Label: "TOKEN", InsertText: "TOKEN(${1:partition_key})", Kind: Function, IsSnippet: true, priority: 2,
		Doc: Documentation{
			Synopsis: "Computes the partitioner token of a partition key, for paging through the ring.",
			Example:  "SELECT TOKEN(id), id FROM users;",
		},
	},
	{
		Label: "TTL", InsertText: "TTL(${1:column})", Kind: Function, IsSnippet: true, priority: 2,
		Doc: Documentation{
			Synopsis: "Returns the remaining time-to-live, in seconds, of a column value.",
			Example:  "SELECT TTL(email) FROM users WHERE id = 62c36092-82a1-3a00-93d1-46196ee77204;",
		},
	},
	{
		Label: "WRITETIME", InsertText: "WRITETIME(${1:column})", Kind: Function, IsSnippet: true, priority: 2,
		Doc: Documentation{
			Synopsis: "Returns the timestamp, in microseconds, at which a column value was written.",
			Example:  "SELECT WRITETIME(email) FROM users WHERE id = 62c36092-82a1-3a00-93d1-46196ee77204;",
		},
	},
}

var fromClause = []Item{
	{
		Label: "WHERE", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Restricts the rows the statement applies to. Restrictions must follow the table's primary key structure.",
			Example:  "SELECT * FROM users WHERE id = 62c36092-82a1-3a00-93d1-46196ee77204;",
		},
	},
	{
		Label: "GROUP BY", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Condenses rows sharing the same values in a prefix of the primary key.",
			Example:  "SELECT country, COUNT(*) FROM users_by_country GROUP BY country;",
		},
	},
	{
		Label: "ORDER BY", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Orders results by a clustering column, ascending or descending.",
			Example:  "SELECT * FROM events WHERE day = '2024-01-01' ORDER BY ts DESC;",
			Notes:    []string{"Ordering is only supported on clustering columns, in the order the table declares them."},
		},
	},
	{
		Label: "LIMIT", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Caps the number of rows returned.",
			Example:  "SELECT * FROM events LIMIT 100;",
		},
	},
	{
		Label: "PER PARTITION LIMIT", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Caps the number of rows returned per partition.",
			Example:  "SELECT * FROM events PER PARTITION LIMIT 3;",
		},
	},
	{
		Label: "ALLOW FILTERING", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Permits restrictions the primary key cannot serve, at the cost of a full scan.",
			Example:  "SELECT * FROM users WHERE name = 'Alice' ALLOW FILTERING;",
			Notes:    []string{"Full-scan queries get slower as the table grows; prefer an index or a query-shaped table."},
		},
	},
}

var whereClause = []Item{
	{
		Label: "AND", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Combines another restriction with the preceding ones.",
			Example:  "SELECT * FROM events WHERE day = '2024-01-01' AND ts > '2024-01-01 12:00';",
		},
	},
	{
		Label: "IN", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Matches any value in a list.",
			Example:  "SELECT * FROM users WHERE id IN (uuid1, uuid2);",
		},
	},
	{
		Label: "CONTAINS", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Matches rows whose collection column contains a value; requires an index on the collection.",
			Example:  "SELECT * FROM users WHERE tags CONTAINS 'admin';",
		},
	},
	{
		Label: "CONTAINS KEY", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Matches rows whose map column contains a key; requires an index on the map keys.",
			Example:  "SELECT * FROM users WHERE prefs CONTAINS KEY 'theme';",
		},
	},
	{
		Label: "TOKEN", InsertText: "TOKEN(${1:partition_key})", Kind: Function, IsSnippet: true, priority: 2,
		Doc: Documentation{
			Synopsis: "Restricts on the partitioner token instead of the key value, for range scans across partitions.",
			Example:  "SELECT * FROM users WHERE TOKEN(id) > TOKEN(62c36092-82a1-3a00-93d1-46196ee77204);",
		},
	},
	{
		Label: "LIMIT", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Caps the number of rows returned.",
			Example:  "SELECT * FROM events WHERE day = '2024-01-01' LIMIT 100;",
		},
	},
	{
		Label: "ALLOW FILTERING", Kind: Keyword, priority: 2,
		Doc: Documentation{
			Synopsis: "Permits restrictions the primary key cannot serve, at the cost of a full scan.",
			Example:  "SELECT * FROM users WHERE name = 'Alice' ALLOW FILTERING;",
		},
	},
}

var columnDefinitions = []Item{
	{
		Label: "PRIMARY KEY", InsertText: "PRIMARY KEY (${1:partition_key})", Kind: Snippet, IsSnippet: true, priority: 0,
		Doc: Documentation{
			Synopsis: "Declares the primary key: the partition key, optionally followed by clustering columns.",
			Example:  "CREATE TABLE events (\n  day date,\n  ts timestamp,\n  payload text,\n  PRIMARY KEY ((day), ts)\n);",
			Notes:    []string{"The partition key decides data placement; clustering columns decide sort order within a partition."},
		},
	},
	{
		Label: "STATIC", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Shares one column value across all rows of a partition.",
			Example:  "CREATE TABLE bills (\n  user uuid,\n  balance counter STATIC,\n  item text,\n  PRIMARY KEY (user, item)\n);",
		},
	},
	{
		Label: "list", InsertText: "list<${1:text}>", Kind: TypeName, IsSnippet: true, priority: 1,
		Doc: Documentation{
			Synopsis: "An ordered collection of values of one type.",
			Example:  "ALTER TABLE users ADD nicknames list<text>;",
		},
	},
	{
		Label: "set", InsertText: "set<${1:text}>", Kind: TypeName, IsSnippet: true, priority: 1,
		Doc: Documentation{
			Synopsis: "An unordered collection of unique values of one type.",
			Example:  "ALTER TABLE users ADD tags set<text>;",
		},
	},
	{
		Label: "map", InsertText: "map<${1:text}, ${2:text}>", Kind: TypeName, IsSnippet: true, priority: 1,
		Doc: Documentation{
			Synopsis: "A collection of key-value pairs with unique keys.",
			Example:  "ALTER TABLE users ADD prefs map<text, text>;",
		},
	},
	{
		Label: "frozen", InsertText: "frozen<${1:type}>", Kind: TypeName, IsSnippet: true, priority: 1,
		Doc: Documentation{
			Synopsis: "Serializes a collection or user-defined type into a single immutable value.",
			Example:  "CREATE TABLE users (id uuid PRIMARY KEY, home frozen<address>);",
			Notes:    []string{"Frozen values can only be replaced whole; individual fields and elements cannot be updated."},
		},
	},

	typeItem("ascii", "US-ASCII character string."),
	typeItem("bigint", "64-bit signed integer."),
	typeItem("blob", "Arbitrary bytes, expressed in hex."),
	typeItem("boolean", "True or false."),
	typeItem("counter", "Distributed 64-bit counter; only incremented or decremented, never set."),
	typeItem("date", "Calendar date without a time component."),
	typeItem("decimal", "Variable-precision decimal number."),
	typeItem("double", "64-bit IEEE-754 floating point."),
	typeItem("float", "32-bit IEEE-754 floating point."),
	typeItem("inet", "IPv4 or IPv6 address."),
	typeItem("int", "32-bit signed integer."),
	typeItem("smallint", "16-bit signed integer."),
	typeItem("text", "UTF-8 encoded string."),
	typeItem("time", "Time of day with nanosecond precision, without a date."),
	typeItem("timestamp", "Date and time with millisecond precision."),
	typeItem("timeuuid", "Version-1 UUID, sortable by its embedded timestamp."),
	typeItem("tinyint", "8-bit signed integer."),
	typeItem("uuid", "Version-4 random UUID."),
	typeItem("varchar", "UTF-8 encoded string; alias of text."),
	typeItem("varint", "Arbitrary-precision integer."),
}

var insertInto = []Item{
	{
		Label: "INTO", Kind: Keyword, priority: 0,
		Doc: Documentation{
			Synopsis: "Names the table the row is written to.",
			Example:  "INSERT INTO users (id, name) VALUES (uuid(), 'Alice');",
		},
	},
	{
		Label: "JSON", Kind: Keyword, priority: 1,
		Doc: Documentation{
			Synopsis: "Inserts a row from a single JSON-encoded value instead of a column list.",
			Example:  "INSERT INTO users JSON '{\"id\": \"62c36092-82a1-3a00-93d1-46196ee77204\", \"name\": \"Alice\"}';",
		},
	},
}

func typeItem(name, synopsis string) Item {
	return Item{
		Label:    name,
		Kind:     TypeName,
		priority: 2,
		Doc:      Documentation{Synopsis: synopsis},
	}
}
