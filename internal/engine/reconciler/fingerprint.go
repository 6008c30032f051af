package reconciler

import (
	"encoding/binary"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/nudge/internal/core/domain"
)

// fingerprint computes a content hash of a desired notification set. It is
// purely observational: reconciliation passes log it so that "did the desired
// set actually change between these two passes" can be answered from logs
// alone. It never short-circuits the remove/add sequence.
func fingerprint(set []domain.ScheduledNotification) string {
	ids := make([]string, len(set))
	byID := make(map[string]domain.ScheduledNotification, len(set))
	for i, n := range set {
		id := n.ID.String()
		ids[i] = id
		byID[id] = n
	}
	sort.Strings(ids)

	hasher := xxhash.New()
	var buf [8]byte
	writeInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = hasher.Write(buf[:])
	}

	for _, id := range ids {
		n := byID[id]
		_, _ = hasher.WriteString(id)
		_, _ = hasher.WriteString(string(n.Trigger.Kind))
		writeInt(int64(n.Trigger.Weekday))
		writeInt(int64(n.Trigger.Hour))
		writeInt(int64(n.Trigger.Minute))
		writeInt(n.Trigger.FireAt.Unix())
		writeInt(int64(n.Trigger.After))
		_, _ = hasher.WriteString(strconv.FormatBool(n.Trigger.Repeats))
		_, _ = hasher.WriteString(n.Content.Title)
		_, _ = hasher.WriteString(n.Content.Body)
		_, _ = hasher.WriteString(n.Content.Sound)
	}

	return strconv.FormatUint(hasher.Sum64(), 16)
}
