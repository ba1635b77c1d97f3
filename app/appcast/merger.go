package appcast

import (
	"sort"
	"time"
)

type Merger struct {
	retentionLimit int
}

func NewMerger(retentionLimit int) *Merger {
	return &Merger{retentionLimit: retentionLimit}
}

// Run edits the channel's item list in place, in two passes: eviction, then
// pruning. Eviction drops items superseded by the incoming version label and
// items without a parseable pubDate; the two conditions are checked
// independently per item. Pruning stable-sorts the survivors (all dated by
// then) ascending by pubDate and keeps only the most recent retentionLimit.
func (m *Merger) Run(channel *Channel, version string) {
	kept := channel.Items[:0]
	for _, item := range channel.Items {
		if item.ShortVersionString == version {
			continue
		}
		if _, ok := item.PubDateParsed(); !ok {
			continue
		}
		kept = append(kept, item)
	}
	channel.Items = kept

	sort.SliceStable(channel.Items, func(i, j int) bool {
		return m.pubDate(channel.Items[i]).Before(m.pubDate(channel.Items[j]))
	})

	if m.retentionLimit > 0 && len(channel.Items) > m.retentionLimit {
		channel.Items = channel.Items[len(channel.Items)-m.retentionLimit:]
	}
}

func (m *Merger) pubDate(item Item) time.Time {
	t, _ := item.PubDateParsed()
	return t
}
