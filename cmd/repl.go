package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jateen67/minheap/heap"
	"github.com/jateen67/minheap/internal"
	"github.com/jateen67/minheap/utils"
)

const commands = "Commands:\n" +
	"\t- insert  <key> <value>   : insert a record\n" +
	"\t- peek                    : show the smallest record\n" +
	"\t- pop                     : remove the smallest record\n" +
	"\t- size                    : show size and capacity\n" +
	"\t- print                   : dump the heap slots (level - index : key)\n" +
	"\t- check                   : verify heap order\n" +
	"\t- drain                   : pop every record in order\n" +
	"\t- stage   <key> <value>   : buffer a record in the memtable\n" +
	"\t- merge                   : merge staged runs into the heap\n" +
	"\t- exit                    : exit\n" +
	"\t- help                    : show this message"

type session struct {
	q        internal.Queue
	memtable *internal.Memtable
	runs     [][]internal.Record
	logger   *zap.Logger
}

func newSession(q internal.Queue, runSize int, logger *zap.Logger) *session {
	return &session{
		q:        q,
		memtable: internal.NewMemtable(runSize),
		logger:   logger,
	}
}

func (s *session) run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, commands)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, "\nEnter command: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" {
			return nil
		}
		if err := s.exec(out, args); err != nil {
			fmt.Fprintln(out, "err:", err)
		}
	}
}

func (s *session) exec(out io.Writer, args []string) error {
	switch args[0] {
	case "insert", "stage":
		if len(args) != 3 {
			return errors.Errorf("%s takes <key> <value>", args[0])
		}
		key, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return errors.Wrapf(err, "parse key %q", args[1])
		}
		r := internal.NewRecord(key, args[2])
		if args[0] == "stage" {
			s.stage(out, r)
			return nil
		}
		if err := s.q.Insert(r); err != nil {
			return err
		}
		fmt.Fprintln(out, "insertion: success")
	case "peek":
		r, err := s.q.Peek()
		if err != nil {
			return err
		}
		printRecord(out, r)
	case "pop":
		r, err := s.q.RemoveMin()
		if err != nil {
			return err
		}
		printRecord(out, r)
	case "size":
		fmt.Fprintf(out, "size: %d/%d\n", s.q.Size(), s.q.Cap())
	case "print":
		return s.q.Print(out)
	case "check":
		if err := s.q.Verify(); err != nil {
			return err
		}
		fmt.Fprintln(out, "heap order: ok")
	case "drain":
		for {
			r, err := s.q.RemoveMin()
			if errors.Is(err, utils.ErrHeapEmpty) {
				return nil
			}
			if err != nil {
				return err
			}
			printRecord(out, r)
		}
	case "merge":
		return s.merge(out)
	case "help":
		fmt.Fprintln(out, "\n"+commands)
	default:
		return errors.Errorf("unknown command %q", args[0])
	}
	return nil
}

func (s *session) stage(out io.Writer, r internal.Record) {
	s.memtable.Set(r)
	if s.memtable.Full() {
		s.runs = append(s.runs, s.memtable.Flush())
		s.logger.Debug("memtable flushed", zap.Int("runs", len(s.runs)))
	}
	fmt.Fprintf(out, "staged: %d buffered, %d runs\n", s.memtable.Len(), len(s.runs))
}

// merge pushes every staged record into the queue in key order. Records that
// do not fit are dropped and counted.
func (s *session) merge(out io.Writer) error {
	if s.memtable.Len() > 0 {
		s.runs = append(s.runs, s.memtable.Flush())
	}
	merged, err := internal.MergeRuns(s.runs, heap.WithLogger(s.logger))
	if err != nil {
		return err
	}
	s.runs = nil

	inserted := 0
	for i, r := range merged {
		err := s.q.Insert(r)
		if errors.Is(err, utils.ErrHeapFull) {
			s.logger.Warn("merge stopped on full heap", zap.Int("dropped", len(merged)-i))
			break
		}
		if err != nil {
			return err
		}
		inserted++
	}
	fmt.Fprintf(out, "merged: %d inserted, %d dropped\n", inserted, len(merged)-inserted)
	return nil
}

func printRecord(out io.Writer, r internal.Record) {
	fmt.Fprintf(out, "%d -> %s\n", r.Key, r.Value)
}
