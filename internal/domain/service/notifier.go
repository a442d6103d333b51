package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/slack-go/slack"

	"github.com/helpmeclean/schedule-service/internal/domain"
	"github.com/helpmeclean/schedule-service/internal/domain/contract"
	"github.com/helpmeclean/schedule-service/internal/domain/schedule"
)

type conflictEvent struct {
	workerName string
	date       string
	jobs       int
}

// conflictNotifier posts a Slack alert the first time a conflicted
// (worker, date) cell is observed. Conflicts are never auto-resolved; the
// alert just points an admin at the cell.
type conflictNotifier struct {
	slackClient contract.SlackClient
	channel     string

	mu     sync.Mutex
	seen   map[string]struct{}
	events chan conflictEvent
	stop   chan struct{}
	once   sync.Once
}

func newConflictNotifier(slackClient contract.SlackClient, channel string) *conflictNotifier {
	return &conflictNotifier{
		slackClient: slackClient,
		channel:     channel,
		seen:        make(map[string]struct{}),
		events:      make(chan conflictEvent, 64),
		stop:        make(chan struct{}),
	}
}

func (n *conflictNotifier) enabled() bool {
	return n.slackClient != nil && n.channel != ""
}

func (n *conflictNotifier) Start() {
	if !n.enabled() {
		return
	}
	go n.loop()
}

func (n *conflictNotifier) Stop() {
	n.once.Do(func() { close(n.stop) })
}

// ObserveGrid scans a freshly built grid and queues an alert for each
// conflicted cell not reported before. Sends are non-blocking: dropping an
// alert under load is preferable to delaying a calendar response.
func (n *conflictNotifier) ObserveGrid(grid *schedule.Grid) {
	if !n.enabled() {
		return
	}

	for _, row := range grid.Rows {
		for _, cell := range row.Cells {
			if !cell.HasConflict {
				continue
			}

			key := fmt.Sprintf("%d_%s", row.Worker.ID, cell.Date)
			n.mu.Lock()
			_, reported := n.seen[key]
			if !reported {
				n.seen[key] = struct{}{}
			}
			n.mu.Unlock()
			if reported {
				continue
			}

			select {
			case n.events <- conflictEvent{
				workerName: row.Worker.FullName,
				date:       cell.Date,
				jobs:       len(cell.Assignments),
			}:
			default:
			}
		}
	}
}

func (n *conflictNotifier) loop() {
	for {
		select {
		case ev := <-n.events:
			n.post(ev)
		case <-n.stop:
			return
		}
	}
}

func (n *conflictNotifier) post(ev conflictEvent) {
	day := ev.date
	if d, err := time.Parse(domain.DateLayout, ev.date); err == nil {
		day = fmt.Sprintf("%s %s", domain.WeekdayNames[int(d.Weekday())], ev.date)
	}
	text := fmt.Sprintf(":warning: Scheduling conflict: %s has %d overlapping jobs on %s", ev.workerName, ev.jobs, day)
	if _, _, err := n.slackClient.PostMessage(n.channel, slack.MsgOptionText(text, false)); err != nil {
		log.Printf("failed to post conflict alert: %v", err)
	}
}
