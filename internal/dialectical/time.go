package dialectical

import "time"

// timeNow is swapped in tests to freeze timestamps.
var timeNow = time.Now
