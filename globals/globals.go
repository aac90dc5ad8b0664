package globals

import (
	"context"
)

var Ctx = context.Background()

// Actor is the provenance tag written into createdBy/updatedBy on every record
// these tools touch.
const Actor = "script"

// EmailDomain is appended to usernames when an admin account is created
// without a real mailbox behind it.
const EmailDomain = "salone.local"
