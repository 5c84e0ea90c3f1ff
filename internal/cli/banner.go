package cli

import "fmt"

// Project metadata shown in the banner.
const (
	authorName  = "ArtTeam"
	authorEmail = "ArtRebos@gmail.com"
	repository  = "https://github.com/artteam09/asmp"
)

const bannerArt = `
    █████╗ ███████╗███╗   ███╗██████╗
   ██╔══██╗██╔════╝████╗ ████║██╔══██╗
   ███████║███████╗██╔████╔██║██████╔╝
   ██╔══██║╚════██║██║╚██╔╝██║██╔═══╝
   ██║  ██║███████║██║ ╚═╝ ██║██║
   ╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝╚═╝
`

// PrintBanner writes the startup banner shown on bare invocation.
func PrintBanner() {
	fmt.Print(bannerArt)
	fmt.Printf("\n   ArtStudia Manager Packets v%s\n", Version)
	fmt.Printf("   Repository: %s\n", repository)
	fmt.Printf("   Author: %s <%s>\n\n", authorName, authorEmail)
}
