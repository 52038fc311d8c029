package lexicon

import _ "modernc.org/sqlite"

const driverName = "sqlite"
