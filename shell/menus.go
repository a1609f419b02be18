package shell

import (
	"strings"

	"github.com/kilianp07/evcs/core/model"
)

func (s *Shell) loginMenu() error {
	s.println("\n1. Login")
	s.println("2. Register")
	s.println("3. Exit")
	choice, err := s.readChoice("Choose an option: ", 3)
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		return s.login()
	case 2:
		return s.register()
	default:
		s.println("Exiting the system. Goodbye!")
		return errExit
	}
}

func (s *Shell) register() error {
	username, err := s.readLine("Enter a username: ")
	if err != nil {
		return err
	}
	password, err := s.readLine("Enter a password: ")
	if err != nil {
		return err
	}
	if _, err := s.users.Register(username, password); err != nil {
		return err
	}
	s.println("Registration successful. You can now log in.")
	return nil
}

func (s *Shell) login() error {
	username, err := s.readLine("Enter your username: ")
	if err != nil {
		return err
	}
	password, err := s.readLine("Enter your password: ")
	if err != nil {
		return err
	}
	u, err := s.users.Login(username, password)
	if err != nil {
		return err
	}
	s.session.Start(u)
	s.println("Login successful!")
	return nil
}

func (s *Shell) mainMenu() error {
	s.println("\nWelcome, " + s.session.Current().Username)
	s.println("1. Find Charging Stations")
	s.println("2. Book Charging Slot")
	s.println("3. Cancel/Modify Booking")
	s.println("4. Add Review & Rating")
	s.println("5. Emergency Support")
	s.println("6. Logout")
	choice, err := s.readChoice("Choose an option: ", 6)
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		return s.findStations()
	case 2:
		return s.book("")
	case 3:
		return s.cancelOrModify()
	case 4:
		return s.review()
	case 5:
		return s.emergency()
	default:
		s.session.Logout()
		s.println("Logged out successfully.")
		return nil
	}
}

func (s *Shell) findStations() error {
	s.println("\nFind Charging Stations")
	location, err := s.readLine("Enter location filter (leave empty to skip): ")
	if err != nil {
		return err
	}
	answer, err := s.readLine("Require fast charging? (yes/no/skip): ")
	if err != nil {
		return err
	}
	fast, err := model.ParseFastChargingFilter(answer)
	if err != nil {
		return err
	}
	stations := s.catalog.FindByFilters(location, fast)
	s.println("\nMatching Charging Stations:")
	if len(stations) == 0 {
		s.println("No stations match your filters.")
	}
	for _, st := range stations {
		s.println(st.String())
	}
	return nil
}

// book runs the booking selection. When previous is set, an empty station
// id keeps that station.
func (s *Shell) book(previous string) error {
	prompt := "\nEnter the ID of the station to book: "
	if previous != "" {
		prompt = "\nEnter the ID of the station to book (leave empty for station " + previous + "): "
	}
	id, err := s.readLine(prompt)
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		id = previous
	}
	st, err := s.catalog.FindByID(id)
	if err != nil {
		return err
	}

	slots := st.AvailableSlots()
	s.println("Available Time Slots:")
	for i, slot := range slots {
		s.printf("%d. %s\n", i+1, slot)
	}
	if len(slots) == 0 {
		answer, err := s.readLine("No available slots. Would you like to join the waitlist? (yes/no): ")
		if err != nil {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(answer), "yes") {
			return s.bookings.JoinWaitlist(st.ID)
		}
		return nil
	}
	choice, err := s.readChoice("Choose a time slot (number): ", len(slots))
	if err != nil {
		return err
	}
	b, err := s.bookings.Book(s.session.Current(), st.ID, slots[choice-1])
	if err != nil {
		return err
	}
	s.println("Booking successful for " + b.String())
	return s.pay()
}

// pay simulates the payment following a booking.
func (s *Shell) pay() error {
	s.println("Processing payment...")
	amount, err := s.readFloat("Enter payment amount: ")
	if err != nil {
		return err
	}
	s.printf("Payment of $%s was successful. Thank you!\n", model.FormatDecimal(amount))
	return nil
}

func (s *Shell) cancelOrModify() error {
	user := s.session.Current()
	bookings := user.Bookings()
	s.println("\nYour Bookings:")
	if len(bookings) == 0 {
		s.println("No bookings found.")
		return nil
	}
	for i, b := range bookings {
		s.printf("%d. %s\n", i+1, b)
	}
	choice, err := s.readChoice("Choose a booking to cancel/modify (number): ", len(bookings))
	if err != nil {
		return err
	}
	chosen := bookings[choice-1]

	s.println("1. Cancel Booking")
	s.println("2. Modify Booking")
	option, err := s.readChoice("Choose an option: ", 2)
	if err != nil {
		return err
	}
	if option == 1 {
		if _, err := s.bookings.Cancel(user, chosen.ID); err != nil {
			return err
		}
		s.println("Booking cancelled successfully.")
		return nil
	}
	st, err := s.bookings.Modify(user, chosen.ID)
	if err != nil {
		return err
	}
	s.println("Booking cancelled. Please make a new booking.")
	return s.book(st.ID)
}

func (s *Shell) review() error {
	id, err := s.readLine("Enter the ID of the station to review: ")
	if err != nil {
		return err
	}
	st, err := s.catalog.FindByID(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	text, err := s.readLine("Enter your review: ")
	if err != nil {
		return err
	}
	rating, err := s.readFloat("Enter your rating (0.0 - 5.0): ")
	if err != nil {
		return err
	}
	if err := s.bookings.Review(st.ID, text, rating); err != nil {
		return err
	}
	s.println("Thank you for your feedback!")
	return nil
}

func (s *Shell) emergency() error {
	s.println("\nEmergency Support Options:")
	s.println("1. Call Roadside Assistance")
	s.println("2. Report an Issue with a Charging Station")
	s.println("3. Contact Customer Support")
	choice, err := s.readChoice("Choose an option: ", 3)
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		s.println("Dialing Roadside Assistance...")
	case 2:
		id, err := s.readLine("Enter the ID of the station to report: ")
		if err != nil {
			return err
		}
		description, err := s.readLine("Describe the issue: ")
		if err != nil {
			return err
		}
		id = strings.TrimSpace(id)
		s.bookings.ReportIssue(s.session.Current(), id, description)
		s.println("Reporting an issue with station ID: " + id)
	default:
		s.println("Connecting to Customer Support...")
	}
	return nil
}
