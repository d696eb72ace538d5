package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/matsen/storelist/internal/store"
)

// Choice is a menu selection.
type Choice int

const (
	ChoiceAdd Choice = iota + 1
	ChoiceList
	ChoiceDelete
	ChoiceSearch
	ChoiceSortByName
	ChoiceSortByCity
	ChoiceSortBySpecialization
	ChoiceExit
)

// menuText is printed before every selection prompt.
const menuText = `Menu:
1. Add a new store
2. View list of stores
3. Delete a store by name
4. Find specific stores
5. Sort by Name
6. Sort by City in Address
7. Sort by Specialization
8. Exit program
`

// errInvalidChoice marks a selection line that is not an integer.
var errInvalidChoice = errors.New("invalid choice")

// Run executes the command loop until the user exits or input ends.
// End of input, or a failed read, is treated like selecting Exit.
func (s *Session) Run() {
	for s.state == StateRunning {
		err := s.step()
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			s.logger.Debug("input closed, exiting")
		} else {
			s.logger.Error("reading input", zap.Error(err))
		}
		s.terminate()
	}
}

// step prints the menu, reads one selection and dispatches it.
func (s *Session) step() error {
	fmt.Fprint(s.out, menuText)
	fmt.Fprint(s.out, "Select an option: ")

	choice, err := s.readChoice()
	if errors.Is(err, errInvalidChoice) {
		s.println("Invalid choice. Try again.")
		return nil
	}
	if err != nil {
		return err
	}

	s.logger.Debug("menu selection", zap.Int("choice", int(choice)))
	return s.dispatch(choice)
}

// dispatch runs the operation for choice.
func (s *Session) dispatch(choice Choice) error {
	switch choice {
	case ChoiceAdd:
		return s.add()
	case ChoiceList:
		s.printStores(s.catalog.All())
	case ChoiceDelete:
		return s.delete()
	case ChoiceSearch:
		return s.search()
	case ChoiceSortByName:
		s.catalog.SortByName()
		s.println("Stores sorted by name:")
		s.printStores(s.catalog.All())
	case ChoiceSortByCity:
		s.catalog.SortByCity()
		s.println("Stores sorted by city in address:")
		s.printStores(s.catalog.All())
	case ChoiceSortBySpecialization:
		s.catalog.SortBySpecialization()
		s.println("Stores sorted by specialization:")
		s.printStores(s.catalog.All())
	case ChoiceExit:
		s.terminate()
	default:
		s.println("Invalid choice. Try again.")
	}
	return nil
}

func (s *Session) add() error {
	name, err := s.prompt("Store name: ")
	if err != nil {
		return err
	}
	address, err := s.prompt("Address: ")
	if err != nil {
		return err
	}
	specialization, err := s.prompt("Specialization: ")
	if err != nil {
		return err
	}
	workingHours, err := s.prompt("Working hours: ")
	if err != nil {
		return err
	}

	st := store.New(name, address, specialization, workingHours)

	answer, err := s.prompt("Add phone number (Y/N)? ")
	if err != nil {
		return err
	}
	for strings.EqualFold(answer, "Y") {
		phone, err := s.prompt("Phone number: ")
		if err != nil {
			return err
		}
		st.AddPhone(phone)

		answer, err = s.prompt("Add another phone number (Y/N)? ")
		if err != nil {
			return err
		}
	}

	s.catalog.Add(st)
	s.println("Store added!")
	return nil
}

func (s *Session) delete() error {
	name, err := s.prompt("Enter the store name to delete: ")
	if err != nil {
		return err
	}

	removed := s.catalog.DeleteByName(name)
	s.logger.Debug("deleted stores", zap.String("name", name), zap.Int("removed", removed))
	s.println(fmt.Sprintf("Store with the name %s deleted (if it was found).", name))
	return nil
}

func (s *Session) search() error {
	keyword, err := s.prompt("Enter keyword to search: ")
	if err != nil {
		return err
	}
	s.printStores(s.catalog.Search(keyword))
	return nil
}

// prompt writes label and reads one line.
func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

// readLine reads one line without its terminator. Returns io.EOF only when
// no characters remain; a final unterminated line is returned as is.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// readChoice reads a selection. Blank lines are skipped; the first token of
// the next line must be an integer and the rest of the line is ignored.
func (s *Session) readChoice() (Choice, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, errInvalidChoice
		}
		return Choice(n), nil
	}
}
