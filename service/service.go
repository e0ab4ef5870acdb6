package service

import (
	"sort"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/session"
)

var sessions = hashmap.New()

func init() {
	async.Async(func() {
		for {
			time.Sleep(1 * time.Minute)
			if swept := Sweep(); swept > 0 {
				log.Infof("swept %d finished session(s)\n", swept)
			}
		}
	})
}

func Register(s *session.Session) {
	sessions.Set(s.ID, s)
}

func Get(id string) *session.Session {
	if v, ok := sessions.Get(id); ok {
		return v.(*session.Session)
	}
	return nil
}

func Remove(id string) {
	sessions.Del(id)
}

// List returns the live sessions, oldest first.
func List() []*session.Session {
	list := make([]*session.Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*session.Session))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}

// Sweep drops sessions whose game loop has returned and reports how many.
func Sweep() int {
	finished := make([]string, 0)
	for _, s := range List() {
		if s.Finished() {
			finished = append(finished, s.ID)
		}
	}
	for _, id := range finished {
		Remove(id)
	}
	return len(finished)
}
