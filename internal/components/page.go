package components

import "fmt"

const (
	shellClass     = "flex min-h-screen flex-col"
	mainClass      = "flex-grow p-4"
	headingClass   = "text-3xl font-bold"
	paragraphClass = "mt-4"
)

const (
	HomeHeading   = "Welcome to VoiceFlow AI Dashboard"
	HomeParagraph = "This is where you can manage your agents, phone numbers, and view call logs."

	NotFoundHeading = "404 - Page not found"
)

// Text is a styled text element.
type Text struct {
	Class string
	Text  string
}

// MainRegion is the growable content area below the navigation bar.
type MainRegion struct {
	Class     string
	Heading   Text
	Paragraph Text
}

// Page is the vertical page shell: navigation bar first, then the main region.
type Page struct {
	Class string
	Nav   NavBar
	Main  MainRegion
}

// HomePage builds the landing page shell.
func HomePage() Page {
	return shell(HomeHeading, HomeParagraph)
}

// NotFoundPage builds the shell shown for paths with no page behind them.
func NotFoundPage(path string) Page {
	return shell(NotFoundHeading, fmt.Sprintf("There is nothing at %s yet.", path))
}

func shell(heading, paragraph string) Page {
	return Page{
		Class: shellClass,
		Nav:   NavigationBar(),
		Main: MainRegion{
			Class:     mainClass,
			Heading:   Text{Class: headingClass, Text: heading},
			Paragraph: Text{Class: paragraphClass, Text: paragraph},
		},
	}
}
