package scheduler

import (
	"log"
	"time"

	draftdomain "coursemail-backend/internal/draft/domain"
	"coursemail-backend/internal/draft/repository"
)

// Dispatcher receives queued drafts whose send time has arrived. Actual
// delivery lives behind this interface.
type Dispatcher interface {
	Dispatch(draft *draftdomain.MessageDraft) error
}

// LogDispatcher records dispatches without delivering anything
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(draft *draftdomain.MessageDraft) error {
	log.Printf("[DraftScheduler] Dispatching message %s (course %s, %d included keys)",
		draft.ID, draft.CourseID, len(draft.IncludedRecipientKeys))
	return nil
}

// DraftDispatchScheduler periodically hands due queued drafts to the dispatcher
type DraftDispatchScheduler struct {
	draftRepo  repository.DraftRepository
	dispatcher Dispatcher
	interval   time.Duration
	stopChan   chan struct{}
}

// NewDraftDispatchScheduler creates a new scheduler
func NewDraftDispatchScheduler(draftRepo repository.DraftRepository, dispatcher Dispatcher) *DraftDispatchScheduler {
	return &DraftDispatchScheduler{
		draftRepo:  draftRepo,
		dispatcher: dispatcher,
		interval:   1 * time.Minute, // Check every minute
		stopChan:   make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *DraftDispatchScheduler) Start() {
	log.Println("[DraftScheduler] Starting draft dispatch scheduler (interval: 1 minute)")

	go func() {
		// Run immediately on start
		s.checkAndDispatch()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.checkAndDispatch()
			case <-s.stopChan:
				log.Println("[DraftScheduler] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *DraftDispatchScheduler) Stop() {
	close(s.stopChan)
}

// checkAndDispatch finds due queued drafts and hands them to the dispatcher
func (s *DraftDispatchScheduler) checkAndDispatch() {
	now := time.Now()

	drafts, err := s.draftRepo.FindDueQueued(now)
	if err != nil {
		log.Printf("[DraftScheduler] Error finding due drafts: %v", err)
		return
	}

	if len(drafts) == 0 {
		return
	}

	log.Printf("[DraftScheduler] Found %d drafts due for dispatch", len(drafts))

	for _, draft := range drafts {
		if err := s.dispatcher.Dispatch(draft); err != nil {
			log.Printf("[DraftScheduler] Error dispatching draft %s: %v", draft.ID, err)
			continue
		}

		if err := s.draftRepo.MarkDispatched(draft.ID); err != nil {
			log.Printf("[DraftScheduler] Error marking draft %s dispatched: %v", draft.ID, err)
		}
	}
}
