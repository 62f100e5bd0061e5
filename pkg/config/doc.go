// Package config loads the optional elvis configuration file.
//
//	            +-------------+
//	            |   Config    |
//	            | (Settings)  |
//	            +------+------+
//	                   |
//	      +------------+------------+
//	      |            |            |
//	+-----+----+ +-----+----+ +-----+----+
//	|   YAML   | |   JSON   | |   HCL    |
//	|  Parser  | |  Parser  | |  Parser  |
//	+----------+ +----------+ +----------+
//
// 🎯 Purpose:
// - Supplies defaults for the global command-line flags
// - Configures the planning policy (large operation threshold, protected paths)
//
// 🔄 Flow:
// 1. Picks a parser from the file extension
// 2. Decodes into File, where every field is optional
// 3. Merges File over Default()
// 4. Validates the result
//
// 🔍 Example (.elvis.yaml):
//
//	max_entries: 20
//	revalidate: true
//	large_operation_threshold: 500
//	protected:
//	  - "**/.git/**"
//	  - "**/node_modules"
//
// The same settings in HCL (.elvis.hcl):
//
//	max_entries = 20
//	protected   = ["**/.git/**"]
//
// Command-line flags always win over the file.
package config
